// Package isp illustrates the Interface Segregation Principle with workers.
//
// The broad [Worker] interface forces [LegacyRobot] to stub Eat with a
// failure. Splitting it into [Workable] and [Eatable] lets [Robot] implement
// only what it supports.
package isp
