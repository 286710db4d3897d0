package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/http/cookiejar"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL  string
	workers  int
	duration time.Duration
	username string
	password string
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

var pages = []string{"/", "/about", "/portfolio", "/blog", "/contact"}

func newClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Timeout: 5 * time.Second,
		Jar:     jar,
		Transport: &http.Transport{
			MaxIdleConns:        200,
			MaxIdleConnsPerHost: 200,
			IdleConnTimeout:     30 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   2 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}
}

func main() {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Drive a running portfolio server with mixed public and admin traffic",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.baseURL, "url", "http://127.0.0.1:8080", "server base URL")
	cmd.Flags().IntVar(&opts.workers, "workers", 50, "concurrent workers")
	cmd.Flags().DurationVar(&opts.duration, "duration", 10*time.Second, "duration of each phase")
	cmd.Flags().StringVar(&opts.username, "user", "admin", "admin username for the write phase")
	cmd.Flags().StringVar(&opts.password, "password", "admin123", "admin password for the write phase")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	fmt.Println("=== Portfolio Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Target: %s\n\n", opts.workers, opts.duration, opts.baseURL)

	public := newClient()
	fmt.Print("Waiting for server... ")
	if !waitForServer(public, opts.baseURL) {
		fmt.Println("FAILED")
		return fmt.Errorf("server %s not responding", opts.baseURL)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Public reads ---")
	runPhase(opts, func(rng *rand.Rand) result {
		return doRead(public, opts.baseURL, rng)
	})

	fmt.Println("\n--- Phase 2: Mixed traffic (60% reads, 40% counters) ---")
	runPhase(opts, func(rng *rand.Rand) result {
		if rng.Float64() < 0.60 {
			return doRead(public, opts.baseURL, rng)
		}
		return doCounter(public, opts.baseURL, rng)
	})

	admin := newClient()
	login, _ := json.Marshal(map[string]string{"username": opts.username, "password": opts.password})
	if r := hit(admin, http.MethodPost, opts.baseURL, "/api/auth/login", login, http.StatusOK); r.err {
		fmt.Printf("\nSkipping admin phase: login answered %d\n", r.status)
		return nil
	}

	fmt.Println("\n--- Phase 3: Admin edits under read load (10% writes) ---")
	runPhase(opts, func(rng *rand.Rand) result {
		if rng.Float64() < 0.10 {
			return doAdminEdit(admin, opts.baseURL, rng)
		}
		return doRead(public, opts.baseURL, rng)
	})

	hit(admin, http.MethodPost, opts.baseURL, "/api/auth/logout", nil, http.StatusNoContent)
	return nil
}

func waitForServer(client *http.Client, baseURL string) bool {
	for i := 0; i < 30; i++ {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

func runPhase(opts options, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < opts.workers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(opts.duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, opts.duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-34s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 100))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-34s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		return
	}
	fmt.Println("  " + strings.Repeat("-", 100))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

// hit issues one request and labels the result with the route template.
func hit(client *http.Client, method, baseURL, path string, body []byte, want int) result {
	label := method + " " + template(path)
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return result{label, 0, 0, true}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{label, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{label, resp.StatusCode, lat, resp.StatusCode != want}
}

// template replaces numeric path segments with {id} and drops the query.
func template(path string) string {
	path, _, _ = strings.Cut(path, "?")
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p != "" && strings.Trim(p, "0123456789") == "" {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

func doRead(client *http.Client, baseURL string, rng *rand.Rand) result {
	paths := []string{
		"/api/personal-info",
		"/api/site-config",
		"/api/projects",
		"/api/projects?featured=true",
		"/api/blog-posts",
		fmt.Sprintf("/api/projects/%d", rng.Intn(3)+1),
		fmt.Sprintf("/api/blog-posts/%d", rng.Intn(2)+1),
		"/api/navigation",
	}
	return hit(client, http.MethodGet, baseURL, paths[rng.Intn(len(paths))], nil, http.StatusOK)
}

func doCounter(client *http.Client, baseURL string, rng *rand.Rand) result {
	switch rng.Intn(4) {
	case 0:
		return hit(client, http.MethodPost, baseURL, fmt.Sprintf("/api/blog-posts/%d/view", rng.Intn(2)+1), nil, http.StatusOK)
	case 1:
		return hit(client, http.MethodPost, baseURL, fmt.Sprintf("/api/blog-posts/%d/like", rng.Intn(2)+1), nil, http.StatusOK)
	case 2:
		body, _ := json.Marshal(map[string]string{"page": pages[rng.Intn(len(pages))]})
		return hit(client, http.MethodPost, baseURL, "/api/analytics/page-view", body, http.StatusNoContent)
	default:
		return hit(client, http.MethodPost, baseURL, "/api/analytics/visitor", nil, http.StatusNoContent)
	}
}

func doAdminEdit(client *http.Client, baseURL string, rng *rand.Rand) result {
	if rng.Float64() < 0.5 {
		body, _ := json.Marshal(map[string]any{"featured": rng.Intn(2) == 0})
		return hit(client, http.MethodPatch, baseURL, fmt.Sprintf("/api/admin/projects/%d", rng.Intn(3)+1), body, http.StatusOK)
	}
	body, _ := json.Marshal(map[string]any{"readTime": fmt.Sprintf("%d min read", rng.Intn(15)+1)})
	return hit(client, http.MethodPatch, baseURL, fmt.Sprintf("/api/admin/blog-posts/%d", rng.Intn(2)+1), body, http.StatusOK)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
