package gamedata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cquest/bagelbot/errs"
)

// A StageCode identifies a campaign stage, as in "6-30h" or "7-3-2n".
// Chapter 7 is split into sub-chapters and carries an extra segment; no
// other chapter does.
type StageCode struct {
	Chapter int
	Sub     string
	Stage   int
	Hard    bool
}

// SubChapter is the only chapter with sub-chapters.
const SubChapter = 7

var errInvalidStageCode = errs.Query("Invalid stage code format. Use a format like 6-30h or 7-1-8n.")

var rStageCode = regexp.MustCompile(`(?i)^(\d+)-(\d+)(?:-(\d+))?([nh])?$`)

// ParseStageCode parses a stage code. A missing n/h suffix means normal
// difficulty.
func ParseStageCode(code string) (StageCode, error) {
	m := rStageCode.FindStringSubmatch(strings.TrimSpace(code))
	if m == nil {
		return StageCode{}, errInvalidStageCode
	}
	chapter, _ := strconv.Atoi(m[1])
	sc := StageCode{
		Chapter: chapter,
		Hard:    strings.EqualFold(m[4], "h"),
	}
	if chapter == SubChapter {
		if m[3] == "" {
			return StageCode{}, errInvalidStageCode
		}
		sc.Sub = m[2]
		sc.Stage, _ = strconv.Atoi(m[3])
		return sc, nil
	}
	if m[3] != "" {
		return StageCode{}, errInvalidStageCode
	}
	sc.Stage, _ = strconv.Atoi(m[2])
	return sc, nil
}

func (c StageCode) String() string {
	suffix := "n"
	if c.Hard {
		suffix = "h"
	}
	if c.Sub != "" {
		return fmt.Sprintf("%d-%s-%d%s", c.Chapter, c.Sub, c.Stage, suffix)
	}
	return fmt.Sprintf("%d-%d%s", c.Chapter, c.Stage, suffix)
}
