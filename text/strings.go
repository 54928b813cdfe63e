package text

import (
	"fmt"
	"strings"
	"unicode"
)

func UpperFirst(s string) string {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return ""
	} else if len(s) == 1 {
		return strings.ToUpper(s)
	}

	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func RemoveRedundantWhitespace(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}

func CardinalNoun(n int) string {
	noun := cardinalNounUnderTwenty(n)
	if noun != "" {
		return noun
	}
	if n > 199 {
		return fmt.Sprintf("%d", n)
	}

	if n == 100 {
		return "one hundred"
	}
	if n > 99 {
		noun = "one hundred and "
		n -= 100
	}
	if n < 20 {
		return noun + cardinalNounUnderTwenty(n)
	}

	switch n / 10 {
	case 2:
		noun += "twenty"
	case 3:
		noun += "thirty"
	case 4:
		noun += "forty"
	case 5:
		noun += "fifty"
	case 6:
		noun += "sixty"
	case 7:
		noun += "seventy"
	case 8:
		noun += "eighty"
	case 9:
		noun += "ninety"
	}

	switch n % 10 {
	case 1:
		noun += "-one"
	case 2:
		noun += "-two"
	case 3:
		noun += "-three"
	case 4:
		noun += "-four"
	case 5:
		noun += "-five"
	case 6:
		noun += "-six"
	case 7:
		noun += "-seven"
	case 8:
		noun += "-eight"
	case 9:
		noun += "-nine"

	}

	return noun
}

func cardinalNounUnderTwenty(n int) string {
	switch n {
	case 0:
		return "no"
	case 1:
		return "one"
	case 2:
		return "two"
	case 3:
		return "three"
	case 4:
		return "four"
	case 5:
		return "five"
	case 6:
		return "six"
	case 7:
		return "seven"
	case 8:
		return "eight"
	case 9:
		return "nine"
	case 10:
		return "ten"
	case 11:
		return "eleven"
	case 12:
		return "twelve"
	case 13:
		return "thirteen"
	case 14:
		return "fourteen"
	case 15:
		return "fifteen"
	case 16:
		return "sixteen"
	case 17:
		return "seventeen"
	case 18:
		return "eighteen"
	case 19:
		return "nineteen"
	}
	return ""
}

func JoinList(strs []string) string {
	var ret string
	for i, s := range strs {
		s = strings.Trim(s, " ,!.?")

		if i != 0 {
			if i == len(strs)-1 {
				ret += " and "
			} else {
				ret += ", "
			}
		}
		ret += s
	}
	return ret
}

func AppendSentence(base, s string) string {
	s = FormatSentence(s)
	if len(base) == 0 {
		return s
	}
	if !strings.HasSuffix(base, " ") {
		base += " "
	}
	return base + s
}

func CardinalWithUnit(n int, singular string, plural string) string {
	if n == 1 {
		return "one " + singular
	}
	return CardinalNoun(n) + " " + plural
}

func FinishSentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = strings.TrimRight(s, ",:;")
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		return s + "."
	}
	return s
}

func FormatSentence(s string) string {
	return UpperFirst(FinishSentence(s))
}
