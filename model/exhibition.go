package model

// Exhibition owns an ordered list of workshops.
type Exhibition struct {
	Id        string      `json:"id" bson:"_id"`
	Title     string      `json:"title" bson:"title"`
	Workshops []*Workshop `json:"workshops" bson:"workshops"`
}

func NewExhibition(id, title string) *Exhibition {
	return &Exhibition{
		Id:        id,
		Title:     title,
		Workshops: []*Workshop{},
	}
}

func (e *Exhibition) InsertWorkshop(workshop *Workshop) {
	e.Workshops = append(e.Workshops, workshop)
}

// DeleteWorkshop removes the workshop with the given title, if present.
func (e *Exhibition) DeleteWorkshop(title string) {
	for i, workshop := range e.Workshops {
		if workshop.Title == title {
			e.Workshops = append(e.Workshops[:i], e.Workshops[i+1:]...)
			return
		}
	}
}

// FindWorkshop returns the owned workshop with the given title, or nil.
func (e *Exhibition) FindWorkshop(title string) *Workshop {
	for _, workshop := range e.Workshops {
		if workshop.Title == title {
			return workshop
		}
	}
	return nil
}

// WorkshopTitles lists the titles of all owned workshops in order.
func (e *Exhibition) WorkshopTitles() []string {
	titles := make([]string, 0, len(e.Workshops))
	for _, workshop := range e.Workshops {
		titles = append(titles, workshop.Title)
	}
	return titles
}
