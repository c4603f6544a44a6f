package main

import "errors"

var (
	ErrNoDrawingContext = errors.New("aqdraw: no hardware accelerated drawing context")
)
