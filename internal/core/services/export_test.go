package services

import (
	"context"
	"time"
)

func (s *BookingService) SetNow(now func() time.Time) { s.now = now }

func (s *QuoteService) SetNow(now func() time.Time) { s.now = now }

func (s *BookingService) ProcessExpiredBookings(ctx context.Context) { s.processExpiredBookings(ctx) }
