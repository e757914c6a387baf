// Package models contains the GORM persistence models and their
// conversions to and from the domain aggregates. Models mirror the
// migration schema; they are never exposed outside the persistence layer.
package models
