package verses

import "github.com/akyairhashvil/deen/internal/config"

var dhikr = []string{
	"سُبْحَانَ اللّهِ",
	"الْحَمْدُ لِلّهِ",
	"لَا إِلَهَ إِلَّا اللّهُ",
	"اللّهُ أَكْبَرُ",
}

// DhikrFor returns the phrase to recite at count. The phrase advances every
// 33 counts and cycles.
func DhikrFor(count int) string {
	if count < 0 {
		count = 0
	}
	return dhikr[(count/config.MilestoneEvery)%len(dhikr)]
}
