package dto

type CalendarEventDTO struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Time   string `json:"time"`
	Color  string `json:"color"`
}

type CalendarDayDTO struct {
	Date   string             `json:"date"`
	Events []CalendarEventDTO `json:"events"`
	More   int                `json:"more"`
}
