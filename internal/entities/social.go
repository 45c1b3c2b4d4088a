package entities

import (
	"strings"
)

// Class labels. Industrial and later eras use the modern vocabulary.
const (
	ClassPeasant  = "Peasant"
	ClassCommoner = "Commoner"
	ClassMerchant = "Merchant"
	ClassNoble    = "Noble"

	ClassWorking = "Working Class"
	ClassMiddle  = "Middle Class"
	ClassUpper   = "Upper Class"
)

var (
	preModernClasses = [...]string{
		WealthPoor:        ClassPeasant,
		WealthModest:      ClassCommoner,
		WealthComfortable: ClassMerchant,
		WealthWealthy:     ClassMerchant,
		WealthNoble:       ClassNoble,
	}
	modernClasses = [...]string{
		WealthPoor:        ClassWorking,
		WealthModest:      ClassWorking,
		WealthComfortable: ClassMiddle,
		WealthWealthy:     ClassUpper,
		WealthNoble:       ClassUpper,
	}

	preModernVocabulary = []string{ClassPeasant, ClassCommoner, ClassMerchant, ClassNoble}
	modernVocabulary    = []string{ClassWorking, ClassMiddle, ClassUpper}
)

// ClassLabel maps a wealth tier to the era's class label. Higher wealth never
// yields a lower-ranked label.
func ClassLabel(era Era, wealth WealthLevel) string {
	if wealth < WealthPoor {
		wealth = WealthPoor
	}
	if wealth > WealthNoble {
		wealth = WealthNoble
	}
	if era.IsPreModern() {
		return preModernClasses[wealth]
	}
	return modernClasses[wealth]
}

// ClassVocabulary lists the era's labels from lowest to highest
func ClassVocabulary(era Era) []string {
	if era.IsPreModern() {
		return preModernVocabulary
	}
	return modernVocabulary
}

// LabelRank is the position of label in the era's vocabulary, or -1
func LabelRank(era Era, label string) int {
	for i, l := range ClassVocabulary(era) {
		if strings.EqualFold(l, label) {
			return i
		}
	}
	return -1
}

// WealthForClass returns the lowest wealth tier that carries label in era
func WealthForClass(era Era, label string) (WealthLevel, bool) {
	for _, w := range WealthLevels {
		if strings.EqualFold(ClassLabel(era, w), strings.TrimSpace(label)) {
			return w, true
		}
	}
	return 0, false
}

var lifespans = map[Era]int{
	EraPrehistory:  50,
	EraAntiquity:   60,
	EraMedieval:    65,
	EraRenaissance: 70,
	EraIndustrial:  75,
	EraModern:      90,
	EraFuture:      100,
}

// Lifespan is the oldest age a relative is allowed to reach in an era
func Lifespan(era Era) int {
	if l, ok := lifespans[era]; ok {
		return l
	}
	return 70
}
