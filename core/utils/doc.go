// Package utils provides common utility functions for the rebar-check application.
// It includes helpers that convert loosely typed property values (as read from
// model files) into the scalar types the schedule tables use.
package utils
