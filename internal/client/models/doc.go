// Package models defines the SITRACK records exchanged with the backend and
// the helpers the terminal client uses to build them from name=value input.
package models
