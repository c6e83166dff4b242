package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
)

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       int64
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
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	UserSuccesses      map[int64]int
	Lock               sync.Mutex
}

// amounts sent by the workers, zero and negative included since the API stores them as given
var amounts = []float64{10, 250.5, 6000, 12000, 0, -100}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of purchases to send")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	var userIDs []int64
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id int64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []int64{1}
	}

	client := &http.Client{Timeout: 10 * time.Second}

	// Row counts before the run, compared after it
	before := make(map[int64]int, len(userIDs))
	for _, id := range userIDs {
		count, err := countPurchases(client, *baseURL, id)
		if err != nil {
			fmt.Printf("Failed to read purchases for user %d: %v\n", id, err)
			os.Exit(1)
		}
		before[id] = count
	}

	fmt.Printf("Load testing /purchase-gold across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		UserSuccesses:   make(map[int64]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, userIDs, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	// Every successful call must have added exactly one row
	fmt.Println("\n----------------- ROW CHECK -----------------")
	mismatch := false
	for _, id := range userIDs {
		after, err := countPurchases(client, *baseURL, id)
		if err != nil {
			fmt.Printf("User %d: failed to read purchases: %v\n", id, err)
			mismatch = true
			continue
		}
		added := after - before[id]
		status := "ok"
		if added != stats.UserSuccesses[id] {
			status = "MISMATCH"
			mismatch = true
		}
		fmt.Printf("User %d: %d successful calls, %d new rows [%s]\n", id, stats.UserSuccesses[id], added, status)
	}
	if mismatch {
		os.Exit(1)
	}
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Success {
		s.SuccessfulRequests++
		s.UserSuccesses[result.UserID]++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

func worker(client *http.Client, baseURL string, delayMs int, userIDs []int64, jobs <-chan int, results chan<- TestResult) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		amount := amounts[rand.Intn(len(amounts))]

		body, err := json.Marshal(dto.PurchaseRequest{UserID: &userID, Amount: &amount})
		if err != nil {
			results <- TestResult{UserID: userID, Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(baseURL+"/purchase-gold", "application/json", bytes.NewReader(body))
		result := TestResult{UserID: userID, ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode == http.StatusOK
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			_ = resp.Body.Close()
		}

		results <- result
	}
}

// countPurchases reads the number of rows stored for a user
func countPurchases(client *http.Client, baseURL string, userID int64) (int, error) {
	resp, err := client.Get(fmt.Sprintf("%s/purchases/%d", baseURL, userID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var list dto.PurchaseListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return 0, err
	}
	return len(list.Purchases), nil
}

func printResults(stats *TestStats) {
	var avgResponseTime time.Duration
	var p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(n)

		sorted := make([]time.Duration, n)
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	if stats.TotalTime > 0 {
		fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.SuccessfulRequests)/stats.TotalTime.Seconds())
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
