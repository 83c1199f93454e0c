// Package ocp illustrates the Open/Closed Principle with area computation.
//
// [LegacyArea] switches over concrete shapes and must be edited whenever a
// new one appears. [ComputeArea] only knows the [Shape] capability, so new
// variants such as [Triangle] are added without touching it.
package ocp
