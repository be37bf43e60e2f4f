package integration_test

import "time"

const (
	TestPassword = "Test123!@#"

	TestAdminEmail    = "admin@example.com"
	TestCustomerEmail = "customer@example.com"

	TestFilmName    = "Dune"
	TestFilmRuntime = 90

	TestRoomName     = "Salle 1"
	TestRoomCapacity = 20

	TestSimplePrice = "8"
	TestGoldPrice   = "70"
)

// TestMonday is 2024-03-11, a Monday.
var TestMonday = time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}
