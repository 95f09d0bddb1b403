// Package aace models the AACE International estimate classification.
//
// Class 5 is the least mature estimate (screening, almost no design) and
// class 1 the most mature (check estimate against near-complete design).
// Each class carries an expected accuracy band expressed as signed percent
// offsets from the true cost.
package aace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Class is an AACE estimate class, 5 (conceptual) through 1 (definitive).
type Class int

const (
	Class1 Class = 1
	Class2 Class = 2
	Class3 Class = 3
	Class4 Class = 4
	Class5 Class = 5
)

// ErrInvalidClass is returned for class ids outside 1..5.
var ErrInvalidClass = errors.New("invalid AACE class")

// Effort is the qualitative preparation effort for a class.
type Effort string

const (
	EffortMinimal  Effort = "minimal"
	EffortLow      Effort = "low"
	EffortMedium   Effort = "medium"
	EffortHigh     Effort = "high"
	EffortVeryHigh Effort = "very_high"
)

// ClassInfo holds the fixed domain constants for one class.
type ClassInfo struct {
	Name                     string
	ConfidenceLowPct         float64
	ConfidenceHighPct        float64
	ContingencyPct           float64
	EngineeringCompletionPct float64
	Effort                   Effort
	EndUse                   string
}

// LowRatio returns the lower band offset as a ratio (-0.5 for -50%).
func (ci ClassInfo) LowRatio() float64 { return ci.ConfidenceLowPct / 100 }

// HighRatio returns the upper band offset as a ratio (1.0 for +100%).
func (ci ClassInfo) HighRatio() float64 { return ci.ConfidenceHighPct / 100 }

// Interval returns the confidence bounds of this class around base.
func (ci ClassInfo) Interval(base float64) (low, high float64) {
	return base * (1 + ci.LowRatio()), base * (1 + ci.HighRatio())
}

var classTable = map[Class]ClassInfo{
	Class5: {
		Name:                     "Class 5 - Conceptual",
		ConfidenceLowPct:         -50,
		ConfidenceHighPct:        100,
		ContingencyPct:           20,
		EngineeringCompletionPct: 2,
		Effort:                   EffortMinimal,
		EndUse:                   "Screening/Feasibility",
	},
	Class4: {
		Name:                     "Class 4 - Study/Feasibility",
		ConfidenceLowPct:         -30,
		ConfidenceHighPct:        50,
		ContingencyPct:           15,
		EngineeringCompletionPct: 10,
		Effort:                   EffortLow,
		EndUse:                   "Concept Study/Feasibility",
	},
	Class3: {
		Name:                     "Class 3 - Budget/Authorization",
		ConfidenceLowPct:         -20,
		ConfidenceHighPct:        30,
		ContingencyPct:           12,
		EngineeringCompletionPct: 30,
		Effort:                   EffortMedium,
		EndUse:                   "Budget/Authorization/Control",
	},
	Class2: {
		Name:                     "Class 2 - Control/Bid",
		ConfidenceLowPct:         -15,
		ConfidenceHighPct:        20,
		ContingencyPct:           8,
		EngineeringCompletionPct: 65,
		Effort:                   EffortHigh,
		EndUse:                   "Control/Bid/Tender",
	},
	Class1: {
		Name:                     "Class 1 - Check/Bid",
		ConfidenceLowPct:         -10,
		ConfidenceHighPct:        15,
		ContingencyPct:           5,
		EngineeringCompletionPct: 95,
		Effort:                   EffortVeryHigh,
		EndUse:                   "Check Estimate/Bid/Control",
	},
}

// progression is ordered from least to most mature.
var progression = [...]Class{Class5, Class4, Class3, Class2, Class1}

// Info returns the constants for c.
func Info(c Class) (ClassInfo, error) {
	ci, ok := classTable[c]
	if !ok {
		return ClassInfo{}, fmt.Errorf("%w: %d", ErrInvalidClass, int(c))
	}
	return ci, nil
}

// MustInfo is Info for classes known to be valid, such as those from Progression.
func MustInfo(c Class) ClassInfo {
	ci, err := Info(c)
	if err != nil {
		panic(err)
	}
	return ci
}

// Progression returns all classes from least mature (5) to most mature (1).
func Progression() []Class {
	out := make([]Class, len(progression))
	copy(out, progression[:])
	return out
}

// Valid reports whether c is one of the five classes.
func (c Class) Valid() bool {
	return c >= Class1 && c <= Class5
}

// Next returns the next more mature class. Class 1 has no successor.
func (c Class) Next() (Class, bool) {
	if !c.Valid() || c == Class1 {
		return c, false
	}
	return c - 1, true
}

// String returns the storage form, e.g. "class_3".
func (c Class) String() string {
	return "class_" + strconv.Itoa(int(c))
}

// Label returns a display form, e.g. "Class 3".
func (c Class) Label() string {
	return "Class " + strconv.Itoa(int(c))
}

// Parse accepts "class_3", "3" or "Class 3".
func Parse(s string) (Class, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "class_")
	raw = strings.TrimPrefix(raw, "class ")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClass, s)
	}
	c := Class(n)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClass, s)
	}
	return c, nil
}
