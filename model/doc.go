// Package model defines the input schema for the dynamic recovery
// optimizer: zones, transformers, zone lines, switches, dispatchable
// units and the top-level Input document that solverdriver consumes.
//
// Struct tags drive two independent validation passes: go-playground's
// validator/v10 checks shape (required fields, numeric ranges, enum
// membership), and Input.Validate layers on the referential checks a
// tag can't express — node existence, zone existence, cross-field
// ordering like p_min <= p_max — returning a *ValidationError that
// names every field, not just the first, so a caller fixes one pass
// instead of round-tripping for each bad field.
package model
