// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Services load entities through repository ports, call a domain mutation
// method or check, stage the resulting writes on the request's
// appctx.RequestContext and commit them. Activity records are staged in the
// same commit and published once it succeeds.
package app
