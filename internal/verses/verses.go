// Package verses holds the fixed daily-verse catalogue.
package verses

import "fmt"

// Verse is one catalogue entry.
type Verse struct {
	Arabic      string
	Translation string
	Reference   string
	Reflection  string
}

var catalogue = []Verse{
	{
		Arabic:      "وَمَن يَتَّقِ اللَّهَ يَجْعَل لَّهُ مَخْرَجًا",
		Translation: "And whoever fears Allah - He will make for him a way out.",
		Reference:   "Surah At-Talaq 65:2",
		Reflection:  "Trust in Allah's wisdom during difficult times. He always provides a path forward for those who maintain their faith and righteousness.",
	},
	{
		Arabic:      "فَإِنَّ مَعَ الْعُسْرِ يُسْرًا",
		Translation: "For indeed, with hardship [will be] ease.",
		Reference:   "Surah Ash-Sharh 94:5",
		Reflection:  "Every challenge in life comes with relief. This verse reminds us to remain patient and optimistic during trying times.",
	},
	{
		Arabic:      "وَاذْكُر رَّبَّكَ كَثِيرًا وَسَبِّحْ بِالْعَشِيِّ وَالْإِبْكَارِ",
		Translation: "And remember your Lord much and exalt [Him with praise] in the evening and the morning.",
		Reference:   "Surah Ali 'Imran 3:41",
		Reflection:  "Consistent remembrance of Allah throughout the day brings peace to the heart and strengthens our connection with the Divine.",
	},
	{
		Arabic:      "إِنَّمَا يُرِيدُ اللَّهُ لِيُذْهِبَ عَنكُمُ الرِّجْسَ أَهْلَ الْبَيْتِ وَيُطَهِّرَكُمْ تَطْهِيرًا",
		Translation: "Allah intends only to remove from you the impurity [of sin], O people of the [Prophet's] household, and to purify you with [extensive] purification.",
		Reference:   "Surah Al-Ahzab 33:33",
		Reflection:  "Spiritual purification is a continuous process. Allah guides us toward cleanliness of heart, mind, and soul.",
	},
}

// Count is the catalogue size.
func Count() int { return len(catalogue) }

// At returns the verse at idx, falling back to the first verse when idx is
// out of range (e.g. a stored index from a larger catalogue).
func At(idx int) Verse {
	if idx < 0 || idx >= len(catalogue) {
		return catalogue[0]
	}
	return catalogue[idx]
}

// Other returns an index different from current, drawn with intn.
func Other(current int, intn func(int) int) int {
	if len(catalogue) < 2 {
		return 0
	}
	idx := intn(len(catalogue) - 1)
	if idx >= current && current >= 0 && current < len(catalogue) {
		idx++
	}
	return idx
}

// ShareText formats a verse for pasting elsewhere.
func ShareText(v Verse) string {
	return fmt.Sprintf("%s\n\n%q\n\n%s", v.Arabic, v.Translation, v.Reference)
}
