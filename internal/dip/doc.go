// Package dip illustrates the Dependency Inversion Principle with a switch.
//
// [LegacySwitch] is welded to a concrete [LightBulb]. [Switch] depends only on
// the [Switchable] capability, so a [Fan] (or anything else) can be swapped
// in at the composition root without touching the controller.
package dip
