package domain

import (
	"strings"
	"time"
)

// Activity is the workout record stored in Postgres.
type Activity struct {
	ID             string
	UserID         string
	ActivityType   ActivityType
	DurationMin    int
	CaloriesBurned int
	StartedAt      time.Time
	Metrics        map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ActivityType enumerates the supported workout categories.
type ActivityType string

const (
	TypeRunning          ActivityType = "RUNNING"
	TypeCycling          ActivityType = "CYCLING"
	TypeSwimming         ActivityType = "SWIMMING"
	TypeWalking          ActivityType = "WALKING"
	TypeYoga             ActivityType = "YOGA"
	TypeWeightlifting    ActivityType = "WEIGHTLIFTING"
	TypeHIIT             ActivityType = "HIIT"
	TypeDance            ActivityType = "DANCE"
	TypePilates          ActivityType = "PILATES"
	TypeHiking           ActivityType = "HIKING"
	TypeBoxing           ActivityType = "BOXING"
	TypeAerobics         ActivityType = "AEROBICS"
	TypeCardio           ActivityType = "CARDIO"
	TypeStrengthTraining ActivityType = "STRENGTH_TRAINING"
	TypeCrossTraining    ActivityType = "CROSS_TRAINING"
	TypeOther            ActivityType = "OTHER"
)

var knownTypes = map[ActivityType]struct{}{
	TypeRunning:          {},
	TypeCycling:          {},
	TypeSwimming:         {},
	TypeWalking:          {},
	TypeYoga:             {},
	TypeWeightlifting:    {},
	TypeHIIT:             {},
	TypeDance:            {},
	TypePilates:          {},
	TypeHiking:           {},
	TypeBoxing:           {},
	TypeAerobics:         {},
	TypeCardio:           {},
	TypeStrengthTraining: {},
	TypeCrossTraining:    {},
	TypeOther:            {},
}

// ParseActivityType normalizes and validates a raw activity type string.
func ParseActivityType(raw string) (ActivityType, bool) {
	t := ActivityType(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := knownTypes[t]
	return t, ok
}
