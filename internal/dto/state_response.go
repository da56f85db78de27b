package dto

import "time"

type StateResponse struct {
	TraceID   string     `json:"traceId"`
	SessionID string     `json:"sessionId"`
	Cards     []CardDTO  `json:"cards"`
	Order     OrderDTO   `json:"order"`
	Modal     VisibleDTO `json:"modal"`
	Success   SuccessDTO `json:"success"`
	Timestamp time.Time  `json:"timestamp"`
}

type CardDTO struct {
	MenuIndex   int    `json:"menuIndex"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
	Price       string `json:"price"`
	ImgURL      string `json:"imgUrl"`
}

type OrderDTO struct {
	Visible bool          `json:"visible"`
	Lines   []LineItemDTO `json:"lines"`
}

type LineItemDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type VisibleDTO struct {
	Visible bool `json:"visible"`
}

type SuccessDTO struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text"`
}
