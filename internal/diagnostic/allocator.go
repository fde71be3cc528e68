package diagnostic

// difficultyLevels fixes evaluation order so quota expansion, and therefore
// truncation order, is deterministic.
var difficultyLevels = []string{"easy", "medium", "hard"}

type quota struct {
	topic      string
	difficulty string
	count      int
}

// allocateByDifficulty converts a percentage distribution into per-difficulty
// counts. Unrecognized difficulty keys are ignored; whatever the floor
// division leaves over is absorbed by the medium bucket, creating it if
// absent.
func allocateByDifficulty(distribution map[string]int, total int) map[string]int {
	counts := make(map[string]int)
	remaining := total

	for _, level := range difficultyLevels {
		pct, ok := distribution[level]
		if !ok {
			continue
		}
		n := pct * total / 100
		counts[level] = n
		remaining -= n
	}

	if remaining > 0 {
		counts["medium"] += remaining
	}
	return counts
}

// allocateQuotas splits each difficulty bucket across the topic list: every
// topic gets at least one question per allocated difficulty, and the first
// count%len(topics) topics get one extra. The per-topic floor can push the
// nominal total above the requested count; reconciliation truncates later.
func allocateQuotas(topics []string, distribution map[string]int, total int) []quota {
	if len(topics) == 0 {
		return nil
	}

	counts := allocateByDifficulty(distribution, total)

	perTopic := make(map[string]map[string]int, len(topics))
	for _, level := range difficultyLevels {
		count, ok := counts[level]
		if !ok {
			continue
		}
		base := count / len(topics)
		if base < 1 {
			base = 1
		}
		remainder := count % len(topics)

		for i, topic := range topics {
			if perTopic[topic] == nil {
				perTopic[topic] = make(map[string]int)
			}
			extra := 0
			if i < remainder {
				extra = 1
			}
			perTopic[topic][level] = base + extra
		}
	}

	var quotas []quota
	for _, topic := range topics {
		for _, level := range difficultyLevels {
			if count := perTopic[topic][level]; count > 0 {
				quotas = append(quotas, quota{topic: topic, difficulty: level, count: count})
			}
		}
	}
	return quotas
}
