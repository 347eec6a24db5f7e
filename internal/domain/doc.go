// Package domain contains the task tracker's rule engine shared types.
// Entity-specific types live in sub-packages (domain/task, domain/user,
// domain/timelog, domain/comment, domain/attachment, domain/activity,
// domain/tag). This root package holds sentinel errors, the typed error
// taxonomy, and domain-level interfaces (Action, WriteStager) shared across
// all entities.
//
// Nothing in this tree performs I/O. Callers load entities, invoke mutation
// methods or rule checks, and persist the results themselves.
package domain
