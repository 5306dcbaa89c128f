package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(base string) *resty.Client {
	return resty.New().
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
}

func checkStatus(resp *resty.Response, want int) error {
	if resp.StatusCode() != want {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func checkOK(resp *resty.Response) error {
	return checkStatus(resp, http.StatusOK)
}
