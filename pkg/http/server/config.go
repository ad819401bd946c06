package server

import (
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}
