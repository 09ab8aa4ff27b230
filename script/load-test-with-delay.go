package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// CreateRequest is the body of POST /api/transactions/create/
type CreateRequest struct {
	UserID          int    `json:"user_id"`
	Amount          int64  `json:"amount"`
	TransactionType string `json:"transaction_type"`
}

// ReportRequest is the body of POST /api/transactions/report/
type ReportRequest struct {
	UserID    int    `json:"user_id"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	UserStats          map[int]int
	ScenarioTimes      map[string][]time.Duration
	Lock               sync.Mutex
}

// Scenario builds one request against the service
type Scenario struct {
	Name string
	Path string
	Body func(userID int) any
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	windows := flag.Int("windows", 3, "Distinct report windows per user; fewer windows means more cache hits")
	flag.Parse()

	var userIDs []int
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id int
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []int{1}
	}

	scenarios := buildScenarios(max(*windows, 1))

	fmt.Printf("Load testing API across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Scenarios: %d, report windows per user: %d\n", len(scenarios), *windows)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		UserStats:     make(map[int]int),
		ScenarioTimes: make(map[string][]time.Duration),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, userIDs, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[result.Scenario+": "+errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.ScenarioTimes[result.Scenario] = append(stats.ScenarioTimes[result.Scenario], result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// buildScenarios mixes writes with report reads. Report windows are fixed so
// repeated reads exercise the cache after the first materialization.
func buildScenarios(windows int) []Scenario {
	scenarios := []Scenario{
		{Name: "deposit", Path: "/api/transactions/create/", Body: func(userID int) any {
			return CreateRequest{UserID: userID, Amount: rand.Int64N(1000) + 1, TransactionType: "deposit"}
		}},
		{Name: "withdrawal", Path: "/api/transactions/create/", Body: func(userID int) any {
			return CreateRequest{UserID: userID, Amount: rand.Int64N(500) + 1, TransactionType: "withdrawal"}
		}},
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for w := 0; w < windows; w++ {
		start := base.AddDate(0, 0, w)
		scenarios = append(scenarios, Scenario{
			Name: fmt.Sprintf("report-%d", w),
			Path: "/api/transactions/report/",
			Body: func(userID int) any {
				return ReportRequest{
					UserID:    userID,
					DateStart: start.Format("2006-01-02T15:04:05"),
					DateEnd:   "2124-01-01T00:00:00",
				}
			},
		})
	}
	return scenarios
}

func worker(baseURL string, delayMs int, userIDs []int, scenarios []Scenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.IntN(len(userIDs))]
		scenario := scenarios[rand.IntN(len(scenarios))]

		stats.Lock.Lock()
		stats.UserStats[userID]++
		stats.Lock.Unlock()

		results <- send(client, baseURL, scenario, userID)
	}
}

func send(client *http.Client, baseURL string, scenario Scenario, userID int) TestResult {
	result := TestResult{Scenario: scenario.Name}

	payload, err := json.Marshal(scenario.Body(userID))
	if err != nil {
		result.Error = err
		return result
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+scenario.Path, bytes.NewReader(payload))
	if err != nil {
		result.Error = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "load-"+uuid.NewString())

	startTime := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(startTime)
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode == http.StatusCreated
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func average(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	var total time.Duration
	for _, t := range times {
		total += t
	}
	return total / time.Duration(len(times))
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", rawTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", average(sorted))
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- PER SCENARIO -----------------")
	names := make([]string, 0, len(stats.ScenarioTimes))
	for name := range stats.ScenarioTimes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		times := stats.ScenarioTimes[name]
		fmt.Printf("%-12s: %5d requests, avg %v\n", name, len(times), average(times))
	}

	fmt.Println("\n----------------- USER DISTRIBUTION -----------------")
	for userID, count := range stats.UserStats {
		fmt.Printf("User %d:    %d requests\n", userID, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
