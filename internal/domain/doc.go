// Package domain contains the core entities of the task API and their
// validation rules, independent of transport and storage concerns.
package domain
