package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Availability(t *testing.T) {
	cases := []struct {
		name  string
		stock int64
		want  string
	}{
		{"positive", 3, model.AvailabilityInStock},
		{"zero", 0, model.AvailabilityOutOfStock},
		{"negative", -15, model.AvailabilityOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.Product{Stock: tc.stock}
			assert.Equal(t, tc.want, p.Availability())
		})
	}
}
