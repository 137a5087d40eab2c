package get_schedule_overview

// Response сводка по всем бронируемым датам
type Response struct {
	Days []Day `json:"days"`
}

// Day одна дата с рабочим окном и загрузкой плавсредств
type Day struct {
	Date        string                   `json:"date"`
	Weekday     string                   `json:"weekday"`
	WindowStart string                   `json:"windowStart"`
	WindowEnd   string                   `json:"windowEnd"`
	Closed      bool                     `json:"closed"`
	Watercraft  []WatercraftAvailability `json:"watercraft"`
}

// WatercraftAvailability процент свободных мест плавсредства на дату
type WatercraftAvailability struct {
	ID         int64  `json:"id"`
	Kind       string `json:"kind"`
	Percentage int    `json:"percentage"`
}
