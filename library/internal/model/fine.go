package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

type OverdueFine struct {
	LendingID   uuid.UUID       `json:"lendingId"`
	Book        BookSummary     `json:"book"`
	Reader      ReaderSummary   `json:"reader"`
	DueDate     time.Time       `json:"dueDate"`
	DaysOverdue int             `json:"daysOverdue"`
	FinePerDay  decimal.Decimal `json:"finePerDay"`
	TotalFine   decimal.Decimal `json:"totalFine"`
}

// DaysOverdue counts whole elapsed days past due; never negative.
func DaysOverdue(due, now time.Time) int {
	if !now.After(due) {
		return 0
	}
	return int(now.Sub(due) / day)
}

func ComputeFine(l LendingDetails, now time.Time) OverdueFine {
	days := DaysOverdue(l.DueDate, now)
	return OverdueFine{
		LendingID:   l.ID,
		Book:        l.Book,
		Reader:      l.Reader,
		DueDate:     l.DueDate,
		DaysOverdue: days,
		FinePerDay:  l.FinePerDay,
		TotalFine:   l.FinePerDay.Mul(decimal.NewFromInt(int64(days))),
	}
}
