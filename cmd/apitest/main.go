// Command apitest runs read-only smoke checks against a running veckoplan
// API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DayResponse is the response for /days/{date} and /days/today
type DayResponse struct {
	Date      string  `json:"date"`
	Weekday   string  `json:"weekday"`
	ISOYear   int     `json:"iso_year"`
	ISOWeek   int     `json:"iso_week"`
	Holiday   *string `json:"holiday"`
	IsHoliday bool    `json:"is_holiday"`
}

// HolidaysResponse is the response for /years/{year}/holidays
type HolidaysResponse struct {
	Year     int `json:"year"`
	Holidays []struct {
		Date string `json:"date"`
		Name string `json:"name"`
	} `json:"holidays"`
}

// WeekResponse is the response for /weeks/{year}/{week}
type WeekResponse struct {
	Start string        `json:"start"`
	End   string        `json:"end"`
	Days  []DayResponse `json:"days"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		out:     out,
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Veckoplan API Smoke Test")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testToday()
	tr.testSpecificDates()
	tr.testYearHolidays()
	tr.testWeeks()
	tr.testErrors()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	var day DayResponse
	if err := tr.getData("/api/v1/days/today", &day); err != nil {
		tr.recordError("Today", err.Error())
		return
	}
	if day.Date == "" || day.ISOWeek < 1 || day.ISOWeek > 53 {
		tr.recordError("Today", fmt.Sprintf("implausible day: %+v", day))
		return
	}
	tr.recordSuccess(fmt.Sprintf("Today is %s (week %d)", day.Date, day.ISOWeek))
}

func (tr *TestRunner) testSpecificDates() {
	tr.printSection("Specific Dates")

	tests := []struct {
		date string
		want string // empty for an ordinary day
	}{
		{"2025-01-01", "Nyårsdagen"},
		{"2025-04-18", "Långfredagen"},
		{"2025-06-21", "Midsommardagen"},
		{"2025-11-01", "Alla helgons dag"},
		{"2025-12-24", ""},
		{"2008-05-01", "Första maj"},
	}

	for _, tt := range tests {
		var day DayResponse
		if err := tr.getData("/api/v1/days/"+tt.date, &day); err != nil {
			tr.recordError(tt.date, err.Error())
			continue
		}

		got := ""
		if day.Holiday != nil {
			got = *day.Holiday
		}
		if got != tt.want || day.IsHoliday != (tt.want != "") {
			tr.recordError(tt.date, fmt.Sprintf("holiday = %q, want %q", got, tt.want))
			continue
		}
		if tr.verbose {
			fmt.Fprintf(tr.out, "    %s %s week %d\n", day.Date, day.Weekday, day.ISOWeek)
		}
		tr.recordSuccess(fmt.Sprintf("%s → %q", tt.date, got))
	}
}

func (tr *TestRunner) testYearHolidays() {
	tr.printSection("Year Holidays")

	for year, want := range map[int]int{2025: 13, 2008: 12} {
		var resp HolidaysResponse
		if err := tr.getData(fmt.Sprintf("/api/v1/years/%d/holidays", year), &resp); err != nil {
			tr.recordError(fmt.Sprint(year), err.Error())
			continue
		}
		if len(resp.Holidays) != want {
			tr.recordError(fmt.Sprint(year), fmt.Sprintf("%d holidays, want %d", len(resp.Holidays), want))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%d has %d holidays", year, want))
	}

	resp, err := tr.getRaw("/api/v1/years/2025/holidays.ics")
	if err != nil {
		tr.recordError("ICS", err.Error())
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(resp.Header.Get("Content-Type"), "text/calendar") || strings.Count(string(body), "BEGIN:VEVENT") != 13 {
		tr.recordError("ICS", "unexpected calendar export")
		return
	}
	tr.recordSuccess("ICS export has 13 events")
}

func (tr *TestRunner) testWeeks() {
	tr.printSection("ISO Weeks")

	for year, want := range map[int]int{2020: 53, 2021: 52, 2026: 53} {
		var resp map[string]int
		if err := tr.getData(fmt.Sprintf("/api/v1/years/%d/weeks", year), &resp); err != nil {
			tr.recordError(fmt.Sprint(year), err.Error())
			continue
		}
		if resp["weeks"] != want {
			tr.recordError(fmt.Sprint(year), fmt.Sprintf("%d weeks, want %d", resp["weeks"], want))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%d has %d weeks", year, want))
	}

	var week WeekResponse
	if err := tr.getData("/api/v1/weeks/2025/25", &week); err != nil {
		tr.recordError("Week 2025-W25", err.Error())
		return
	}
	if week.Start != "2025-06-16" || len(week.Days) != 7 {
		tr.recordError("Week 2025-W25", fmt.Sprintf("start %s with %d days", week.Start, len(week.Days)))
		return
	}
	tr.recordSuccess("2025-W25 starts Monday 2025-06-16")
}

func (tr *TestRunner) testErrors() {
	tr.printSection("Error Handling")

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/days/2025-02-30", http.StatusBadRequest},
		{"/api/v1/years/abc/holidays", http.StatusBadRequest},
		{"/api/v1/weeks/2025/53", http.StatusNotFound},
		{"/api/v1/events", http.StatusBadRequest},
	}

	for _, tt := range tests {
		resp, err := tr.getRaw(tt.path)
		if err != nil {
			tr.recordError(tt.path, err.Error())
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			tr.recordError(tt.path, fmt.Sprintf("status %d, want %d", resp.StatusCode, tt.status))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s → %d", tt.path, tt.status))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

// getData fetches path and decodes the envelope's data into target.
func (tr *TestRunner) getData(path string, target interface{}) error {
	resp, err := tr.getRaw(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}

	return json.Unmarshal(apiResp.Data, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintln(tr.out)
	fmt.Fprintf(tr.out, "--- %s ---\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "Failures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		return
	}
	fmt.Fprintln(tr.out, "All checks passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, os.Stdout, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
