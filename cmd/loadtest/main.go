package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type User struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	BirthDate   string `json:"birthDate"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

var httpc = &http.Client{Timeout: 10 * time.Second}

func postJSON(url string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func randomUser(rng *rand.Rand, n int) User {
	birth := time.Date(1950+rng.Intn(50), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
	return User{
		Email:       fmt.Sprintf("user%d@example.com", n),
		FirstName:   fmt.Sprintf("First%d", n),
		LastName:    fmt.Sprintf("Last%d", n),
		BirthDate:   birth.Format("2006-01-02"),
		Address:     fmt.Sprintf("%d Main St", n),
		PhoneNumber: fmt.Sprintf("+1555%07d", n),
	}
}

// Seed
func seedUsers(host string, count int, rng *rand.Rand) error {
	log.Printf("Seeding: creating %d users...", count)

	for i := 1; i <= count; i++ {
		status, err := postJSON(host+"/users", randomUser(rng, i))
		if err != nil {
			return err
		}
		if status != http.StatusCreated {
			log.Printf("WARN POST /users returned %d", status)
		}
	}

	log.Printf("Seed completed: users=%d", count)
	return nil
}

// Targeter
func makeTargeter(host string, seeded int, rng *rand.Rand) vegeta.Targeter {
	jsonHeader := map[string][]string{"Content-Type": {"application/json"}}
	acceptHeader := map[string][]string{"Accept": {"application/json"}}
	counter := max(seeded, 1)
	var mu sync.Mutex

	return func(t *vegeta.Target) error {
		mu.Lock()
		defer mu.Unlock()

		r := rng.Float64()

		// 50% GET /users/search
		if r < 0.50 {
			from := 1950 + rng.Intn(40)
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/search?from=%d-01-01&to=%d-01-01", host, from, from+1+rng.Intn(10))
			t.Body = nil
			t.Header = acceptHeader
			return nil
		}

		// 30% GET /users
		if r < 0.80 {
			t.Method = http.MethodGet
			t.URL = host + "/users"
			t.Body = nil
			t.Header = acceptHeader
			return nil
		}

		// 12% POST /users
		if r < 0.92 {
			counter++
			body, _ := json.Marshal(randomUser(rng, counter))
			t.Method = http.MethodPost
			t.URL = host + "/users"
			t.Body = body
			t.Header = jsonHeader
			return nil
		}

		// 6% PUT /users/{id}
		if r < 0.98 {
			body, _ := json.Marshal(randomUser(rng, rng.Intn(counter)+1))
			t.Method = http.MethodPut
			t.URL = fmt.Sprintf("%s/users/%d", host, rng.Intn(counter)+1)
			t.Body = body
			t.Header = jsonHeader
			return nil
		}

		// 2% DELETE /users/{id}
		t.Method = http.MethodDelete
		t.URL = fmt.Sprintf("%s/users/%d", host, rng.Intn(counter)+1)
		t.Body = nil
		t.Header = nil
		return nil
	}
}

// Attack
func runAttack(host string, rps int, duration time.Duration, targeter vegeta.Targeter) {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", host, duration)
	for res := range attacker.Attack(targeter, rate, duration, "user-directory-load") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	host := flag.String("host", "http://localhost:8080", "target base URL")
	rps := flag.Int("rps", 50, "requests per second")
	duration := flag.Duration("duration", time.Minute, "attack duration")
	seed := flag.Int("seed", 200, "users created before the attack")
	flag.Parse()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := seedUsers(*host, *seed, rng); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack(*host, *rps, *duration, makeTargeter(*host, *seed, rng))
}
