package repositories

import "errors"

// ErrNotFound wspólny błąd repozytoriów dla nieistniejącego rekordu.
// Serwisy tłumaczą go na własne błędy domenowe.
var ErrNotFound = errors.New("rekord nie istnieje")
