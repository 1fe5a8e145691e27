package models

import "errors"

// ErrSweetNotFound is returned when no sweet matches the requested id so
// handlers can respond with 404.
var ErrSweetNotFound = errors.New("sweet not found")

// ErrInsufficientStock is returned when a purchase would drive the
// on-hand quantity below zero. The record is left untouched.
var ErrInsufficientStock = errors.New("insufficient stock")
