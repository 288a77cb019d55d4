package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"
)

// Гоняет полный сценарий оформления против локального стенда:
// корзина -> адрес -> экран оформления -> наличные -> итог -> история.
const baseURL = "http://localhost:8080"

func main() {
	userID := fmt.Sprintf("driver-%d", rand.Intn(100000))

	post(userID, "/cart/items", map[string]any{"food_id": 1, "quantity": 2})
	post(userID, "/addresses", map[string]any{"street": "Nguyen Hue 1", "city": "Saigon", "category": "home"})

	var info struct {
		AutoSelectedID string `json:"auto_selected_id"`
		Summary        struct {
			Total string `json:"total"`
		} `json:"summary"`
	}
	json.Unmarshal(get(userID, "/checkout"), &info)
	fmt.Println("auto selected:", info.AutoSelectedID, "total:", info.Summary.Total)

	if info.AutoSelectedID == "" {
		fmt.Println("адрес не выбран автоматически, стоп")
		os.Exit(1)
	}

	started := post(userID, "/checkout", map[string]any{
		"address_id":     info.AutoSelectedID,
		"payment_method": "cash",
	})
	fmt.Println("checkout:", string(started))

	fmt.Println("result:", string(get(userID, "/checkout/result")))
	fmt.Println("orders:", string(get(userID, "/orders")))
}

func post(userID, path string, body any) []byte {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(http.MethodPost, baseURL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", userID)
	return do(req)
}

func get(userID, path string) []byte {
	req, _ := http.NewRequest(http.MethodGet, baseURL+path, nil)
	req.Header.Set("X-User-Id", userID)
	return do(req)
}

func do(req *http.Request) []byte {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("ошибка запроса:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	fmt.Println(req.Method, req.URL.Path, "->", resp.Status)
	return buf.Bytes()
}
