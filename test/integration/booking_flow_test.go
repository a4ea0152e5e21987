package integration

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"roomly/test/integration/testutil"
)

// These tests run against a live server and a real database. Set
// TEST_SERVER_URL to enable them.
func newSuite(t *testing.T) *testutil.Client {
	t.Helper()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		t.Skip("TEST_SERVER_URL not set, skipping integration tests")
	}

	client := testutil.NewClient(serverURL)
	client.WaitForHealthy(t, 30*time.Second)
	return client
}

func uniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

func TestSignupAndLoginFlow(t *testing.T) {
	client := newSuite(t)
	email := fmt.Sprintf("guest-%s@example.com", uniqueSuffix())

	resp := client.POST(t, "/signup", map[string]any{
		"name":     "Integration Guest",
		"email":    email,
		"password": "hunter22",
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = client.POST(t, "/signup", map[string]any{
		"name":     "Integration Guest",
		"email":    email,
		"password": "hunter22",
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

	resp = client.POST(t, "/login", map[string]any{
		"email":    email,
		"password": "hunter22",
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = client.POST(t, "/login", map[string]any{
		"email":    email,
		"password": "wrong-password",
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestBookingLifecycle(t *testing.T) {
	client := newSuite(t)
	roomNumber := "IT-" + uniqueSuffix()

	resp := client.POSTMultipart(t, "/rooms", map[string]string{
		"roomNumber":   roomNumber,
		"roomType":     "suite",
		"pricePerHour": "40",
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Hour)
	end := start.Add(2 * time.Hour)

	resp = client.POST(t, "/bookings", map[string]any{
		"userEmail":  "guest@example.com",
		"userName":   "Integration Guest",
		"roomNumber": roomNumber,
		"startTime":  start.Format(time.RFC3339),
		"endTime":    end.Format(time.RFC3339),
		"price":      80,
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := resp.DecodeJSON(&created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("expected created booking to carry an ID")
	}
	bookingID := created.Data.ID

	// Overlapping interval on the same room is rejected.
	resp = client.POST(t, "/bookings", map[string]any{
		"userEmail":  "other@example.com",
		"userName":   "Other Guest",
		"roomNumber": roomNumber,
		"startTime":  start.Add(30 * time.Minute).Format(time.RFC3339),
		"endTime":    end.Add(30 * time.Minute).Format(time.RFC3339),
		"price":      80,
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

	// Back-to-back is allowed.
	resp = client.POST(t, "/bookings", map[string]any{
		"userEmail":  "other@example.com",
		"userName":   "Other Guest",
		"roomNumber": roomNumber,
		"startTime":  end.Format(time.RFC3339),
		"endTime":    end.Add(time.Hour).Format(time.RFC3339),
		"price":      40,
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	// Updating without moving the interval must not conflict with itself.
	resp = client.PUT(t, "/bookings/"+bookingID, map[string]any{"tip": 5})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	resp = client.GET(t, "/bookings/"+bookingID)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = client.DELETE(t, "/bookings/"+bookingID)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = client.GET(t, "/bookings/"+bookingID)
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestBookingForUnknownRoom(t *testing.T) {
	client := newSuite(t)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Hour)
	resp := client.POST(t, "/bookings", map[string]any{
		"userEmail":  "guest@example.com",
		"userName":   "Integration Guest",
		"roomNumber": "NO-SUCH-ROOM-" + uniqueSuffix(),
		"startTime":  start.Format(time.RFC3339),
		"endTime":    start.Add(time.Hour).Format(time.RFC3339),
		"price":      40,
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestContactIntake(t *testing.T) {
	client := newSuite(t)

	resp := client.POST(t, "/contact", map[string]any{
		"name":    "Integration Guest",
		"email":   "guest@example.com",
		"message": "Is the pool open on weekends?",
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)
}
