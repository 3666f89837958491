package model

import "time"

type DashboardCounts struct {
	TotalBooks          int64 `json:"totalBooks"`
	TotalReaders        int64 `json:"totalReaders"`
	BooksLentOut        int64 `json:"booksLentOut"`
	OverdueBooks        int64 `json:"overdueBooks"`
	PendingReturnsToday int64 `json:"pendingReturnsToday"`
}

type NotificationResult struct {
	Message         string `json:"message"`
	ReadersNotified int    `json:"readersNotified"`
	Failed          int    `json:"failed,omitempty"`
}

// Counter names one of the dashboard tallies.
type Counter int

const (
	CountBooks Counter = iota
	CountReaders
	CountLentOut
	CountOverdue
	CountDueToday
)

var Counters = []Counter{CountBooks, CountReaders, CountLentOut, CountOverdue, CountDueToday}

func (c Counter) String() string {
	switch c {
	case CountBooks:
		return "totalBooks"
	case CountReaders:
		return "totalReaders"
	case CountLentOut:
		return "booksLentOut"
	case CountOverdue:
		return "overdueBooks"
	case CountDueToday:
		return "pendingReturnsToday"
	}
	return "unknown"
}

// DayBounds returns [start, end) of the UTC day containing now.
func DayBounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(day)
}

func (d *DashboardCounts) Set(c Counter, n int64) {
	switch c {
	case CountBooks:
		d.TotalBooks = n
	case CountReaders:
		d.TotalReaders = n
	case CountLentOut:
		d.BooksLentOut = n
	case CountOverdue:
		d.OverdueBooks = n
	case CountDueToday:
		d.PendingReturnsToday = n
	}
}
