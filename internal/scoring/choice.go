package scoring

// ScoreChoice maps an ordinal option string such as "3. 需要帮助" to its
// numeric value. Malformed, empty, or out-of-range answers map to 1
// (the "can do independently" baseline) so a skipped item never blocks
// aggregation.
func ScoreChoice(answer string) int {
	i := 0
	for i < len(answer) && answer[i] == ' ' {
		i++
	}
	n := 0
	digits := 0
	for ; i < len(answer); i++ {
		c := answer[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		digits++
	}
	if digits == 0 || n < 1 || n > 4 {
		return 1
	}
	return n
}
