package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// session is a registered load test account with one persona
type session struct {
	Email     string
	Token     string
	PersonaID string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Session      int
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	Charged           int // 200: the message was paid for and delivered
	Rejected          int // 402: the balance was exhausted
	Failed            int
	TotalTime         time.Duration
	MinResponseTime   time.Duration
	MaxResponseTime   time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	ErrorCounts       map[string]int
	SessionStats      map[int]int
	Lock              sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of messages to send")
	accounts := flag.Int("a", 3, "Number of accounts to register and spread load across")
	baseURL := flag.String("url", "http://localhost:8080/api/v1", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 90 * time.Second}

	fmt.Printf("Registering %d accounts...\n", *accounts)
	sessions, err := setup(context.Background(), client, *baseURL, *accounts)
	if err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		return
	}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		SessionStats:    make(map[int]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, sessions, jobs, results)
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
	fmt.Println("Test running...")
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	verifyLedgers(client, *baseURL, sessions)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.SessionStats[result.Session]++
	switch {
	case result.Error != nil:
		s.Failed++
		s.ErrorCounts[result.Error.Error()]++
	case result.StatusCode == http.StatusOK:
		s.Charged++
	case result.StatusCode == http.StatusPaymentRequired:
		s.Rejected++
	default:
		s.Failed++
		s.ErrorCounts[fmt.Sprintf("HTTP status code %d", result.StatusCode)]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

// setup registers accounts concurrently and creates one persona for each
func setup(ctx context.Context, client *http.Client, baseURL string, n int) ([]session, error) {
	sessions := make([]session, n)
	runID := rand.IntN(1_000_000)

	g, ctx := errgroup.WithContext(ctx)
	for i := range sessions {
		g.Go(func() error {
			email := fmt.Sprintf("load-%d-%d@example.com", runID, i)
			var auth struct {
				Token string `json:"token"`
			}
			err := call(ctx, client, http.MethodPost, baseURL+"/auth/register", "", map[string]string{
				"email":    email,
				"username": fmt.Sprintf("load_%d_%d", runID, i),
				"password": "load-test-password",
			}, &auth)
			if err != nil {
				return fmt.Errorf("register %s: %w", email, err)
			}

			var persona struct {
				ID string `json:"id"`
			}
			if err := call(ctx, client, http.MethodPost, baseURL+"/personas", auth.Token, map[string]any{"name": "Load"}, &persona); err != nil {
				return fmt.Errorf("create persona for %s: %w", email, err)
			}

			sessions[i] = session{Email: email, Token: auth.Token, PersonaID: persona.ID}
			return nil
		})
	}
	return sessions, g.Wait()
}

func worker(client *http.Client, baseURL string, delayMs int, sessions []session, jobs <-chan int, results chan<- TestResult) {
	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		idx := rand.IntN(len(sessions))
		s := sessions[idx]
		body, _ := json.Marshal(map[string]string{"text": fmt.Sprintf("message %d", jobID)})

		req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/personas/%s/messages", baseURL, s.PersonaID), bytes.NewReader(body))
		if err != nil {
			results <- TestResult{Session: idx, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.Token)

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Session: idx, ResponseTime: time.Since(startTime), Error: err}
		if err == nil {
			result.StatusCode = resp.StatusCode
			_ = resp.Body.Close()
		}
		results <- result
	}
}

// verifyLedgers checks that every balance is non-negative and equals the sum of its transactions
func verifyLedgers(client *http.Client, baseURL string, sessions []session) {
	fmt.Println("\n----------------- LEDGER CHECK -----------------")
	ctx := context.Background()
	ok := true

	for _, s := range sessions {
		var me struct {
			Balance       int64 `json:"balance"`
			LifetimeSpend int64 `json:"lifetimeSpend"`
		}
		if err := call(ctx, client, http.MethodGet, baseURL+"/me", s.Token, nil, &me); err != nil {
			fmt.Printf("%s: %v\n", s.Email, err)
			ok = false
			continue
		}

		var sum int64
		for offset := 0; ; offset += 100 {
			var page struct {
				Items []struct {
					Amount int64 `json:"amount"`
				} `json:"items"`
			}
			url := fmt.Sprintf("%s/transactions?limit=100&offset=%d", baseURL, offset)
			if err := call(ctx, client, http.MethodGet, url, s.Token, nil, &page); err != nil {
				fmt.Printf("%s: %v\n", s.Email, err)
				ok = false
				break
			}
			for _, item := range page.Items {
				sum += item.Amount
			}
			if len(page.Items) < 100 {
				break
			}
		}

		status := "OK"
		if me.Balance < 0 || me.Balance != sum {
			status = "MISMATCH"
			ok = false
		}
		fmt.Printf("%-40s balance=%d spend=%d entries=%d %s\n", s.Email, me.Balance, me.LifetimeSpend, sum, status)
	}

	if ok {
		fmt.Println("✅ All balances match their transaction logs")
	} else {
		fmt.Println("❌ Ledger check failed")
	}
}

func call(ctx context.Context, client *http.Client, method, url, token string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printResults(stats *TestStats) {
	rps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime, p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(n)
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Charged:             %d\n", stats.Charged)
	fmt.Printf("Out of credits:      %d\n", stats.Rejected)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	for idx, count := range stats.SessionStats {
		fmt.Printf("Account %d:    %d requests\n", idx, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
