package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	progressiveLeaningText = `윤석열 대통령이 또다시 거부권을 행사했다. 김건희 특검법에 이어 채상병 특검법까지 거부하면서
국민의힘 내부에서도 비판의 목소리가 나오고 있다. 이는 명백한 권력 사유화이며,
검찰 독재의 연장선이라는 지적이 나온다. 한동훈 전 위원장의 책임론도 불거지고 있다.`

	conservativeLeaningText = `이재명 대표의 사법리스크가 더불어민주당의 발목을 잡고 있다. 대북송금 의혹에 대한
검찰 수사가 계속되면서, 민주당은 연일 방탄 국회를 열고 있다는 비판을 피하기 어렵게 됐다.
정부의 민생 정책이 거대 야당의 입법 독주에 막혀있다는 우려가 커진다.`

	neutralText = `여야가 연금개혁을 두고 또다시 평행선을 달리고 있다. 국민의힘은 재정 건전성을 우선해야 한다는 입장인 반면,
더불어민주당은 소득 보장 강화를 주장하고 있다. 전문가들은 양측의 합의 없이는
미래 세대에 부담을 전가할 수밖에 없다고 지적했다.`
)

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty_text_is_neutral", text: "", expected: 50},
		{name: "whitespace_is_neutral", text: "   ", expected: 50},
		{name: "criticism_of_conservatives", text: progressiveLeaningText, expected: 90},
		{name: "criticism_of_progressives", text: conservativeLeaningText, expected: 10},
		{name: "balanced_reporting", text: neutralText, expected: 50},
		{name: "single_strong_pattern", text: "김건희 특검 공방", expected: 73},
		{name: "amplified_strong_pattern", text: "이재명 사법리스크 강력히 제기", expected: 23},
		{name: "blame_construction", text: "정부의 책임 공방", expected: 48},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Score(tc.text))
		})
	}
}

func TestKeywordAnalyzer_ScorePoliticalLeaning(t *testing.T) {
	score, err := NewKeywordAnalyzer().ScorePoliticalLeaning(context.Background(), conservativeLeaningText)
	require.NoError(t, err)
	assert.Equal(t, 10, score)
}
