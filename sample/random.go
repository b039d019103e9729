package sample

import (
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func randomBool() bool {
	return rand.Intn(2) == 1
}

func randomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func randomNonZeroInt(min, max int) int {
	for {
		if n := randomInt(min, max); n != 0 {
			return n
		}
	}
}
