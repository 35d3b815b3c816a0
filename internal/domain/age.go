package domain

// AgeGroup is a derived driver-age bucket. It is computed on demand and
// never stored on a StopRecord.
type AgeGroup string

const (
	AgeUnder18 AgeGroup = "<18"
	Age18To30  AgeGroup = "18-30"
	Age31To45  AgeGroup = "31-45"
	Age46To60  AgeGroup = "46-60"
	Age60Plus  AgeGroup = "60+"
)

// AgeGroups lists the buckets in ascending age order.
var AgeGroups = []AgeGroup{AgeUnder18, Age18To30, Age31To45, Age46To60, Age60Plus}

// AgeGroupOf buckets an age:
//
//	[0,18)   <18
//	[18,30]  18-30
//	[31,45]  31-45
//	[46,60]  46-60
//	[61,100] 60+
//
// 60 falls in 46-60. Ages outside [0,100] have no bucket.
func AgeGroupOf(age int) (AgeGroup, bool) {
	switch {
	case age < 0 || age > 100:
		return "", false
	case age < 18:
		return AgeUnder18, true
	case age <= 30:
		return Age18To30, true
	case age <= 45:
		return Age31To45, true
	case age <= 60:
		return Age46To60, true
	}
	return Age60Plus, true
}

// Rank is the position of g in AgeGroups; unknown groups sort last.
func (g AgeGroup) Rank() int {
	for i, a := range AgeGroups {
		if a == g {
			return i
		}
	}
	return len(AgeGroups)
}
