package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSupplement_IsActiveOn(t *testing.T) {
	bounded := &Supplement{StartDate: "2024-03-01", EndDate: strPtr("2024-03-10")}
	indefinite := &Supplement{StartDate: "2024-03-01"}

	tests := []struct {
		name string
		s    *Supplement
		date string
		want bool
	}{
		{name: "正常系: 開始日当日は有効", s: bounded, date: "2024-03-01", want: true},
		{name: "正常系: 終了日当日は有効", s: bounded, date: "2024-03-10", want: true},
		{name: "正常系: 期間中は有効", s: bounded, date: "2024-03-05", want: true},
		{name: "正常系: 開始日前は無効", s: bounded, date: "2024-02-29", want: false},
		{name: "正常系: 終了日翌日は無効", s: bounded, date: "2024-03-11", want: false},
		{name: "正常系: 無期限は開始日以降ずっと有効", s: indefinite, date: "2030-12-31", want: true},
		{name: "正常系: 無期限でも開始日前は無効", s: indefinite, date: "2024-02-29", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.IsActiveOn(tt.date))
		})
	}
}

func TestEndBound_ClampUpper(t *testing.T) {
	assert.Equal(t, "2024-03-10", BoundedUntil("2024-03-10").ClampUpper("2024-06-01"))
	assert.Equal(t, "2024-03-05", BoundedUntil("2024-03-10").ClampUpper("2024-03-05"))
	assert.Equal(t, "2024-06-01", Indefinite().ClampUpper("2024-06-01"))
}

func TestSupplement_TracksInventory(t *testing.T) {
	assert.True(t, (&Supplement{StartDate: "2024-03-01"}).TracksInventory())
	assert.False(t, (&Supplement{StartDate: "2024-03-01", EndDate: strPtr("2024-03-10")}).TracksInventory())
}
