package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"gorm.io/gorm"
)

func TestFlagCreateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{"duplicate key is a conflict", gorm.ErrDuplicatedKey, apperr.KindConflict},
		{"wrapped duplicate key", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), apperr.KindConflict},
		{"connection failure stays internal", errors.New("write tcp: connection reset"), apperr.KindInternal},
		{"other gorm error stays internal", gorm.ErrInvalidTransaction, apperr.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperr.KindOf(flagCreateError(tt.err)); got != tt.want {
				t.Fatalf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}
