package stats

import (
	"bytes"
	"fmt"
	"testing"
)

// RuleChecker compares a rendered stat ('got') against an expected value.
type RuleChecker struct {
	name    string
	checker func(interface{}, interface{}) bool
}

type Rule struct {
	Checker RuleChecker
	Value   interface{}
}

func nilCheck(a, b interface{}) (nilFound, eqValues bool) {
	if a == nil && b == nil {
		return true, true
	} else if a == nil || b == nil {
		return true, false
	}
	return false, false
}

// expects a to be int64 and b to be int
func int64EqTest(a, b interface{}) bool {
	if nilFound, eq := nilCheck(a, b); nilFound {
		return eq
	}
	return a.(int64) == int64(b.(int))
}

var Int64EqTest = RuleChecker{name: "Int64EqTest", checker: int64EqTest}

// expects a to be int64 and b to be int
func int64GTTest(a, b interface{}) bool {
	if nilFound, eq := nilCheck(a, b); nilFound {
		return eq
	}
	return a.(int64) > int64(b.(int))
}

var Int64GTTest = RuleChecker{name: "Int64GTTest", checker: int64GTTest}

func doesNotExistTest(a, b interface{}) bool {
	return a == nil
}

var DoesNotExistTest = RuleChecker{name: "DoesNotExistTest", checker: doesNotExistTest}

// VerifyStats checks that every key in contains satisfies its rule. Only
// registries made by NewFlatStatsRegistry can be verified.
func VerifyStats(tag string, statsRegistry StatsRegistry, t *testing.T, contains map[string]Rule) {
	flat, ok := statsRegistry.(*flatStatsRegistry)
	if !ok {
		t.Errorf("%s: cannot verify stats of a %T", tag, statsRegistry)
		return
	}

	var msg bytes.Buffer
	failed := false
	asJson := flat.MarshalAll()
	for key, rule := range contains {
		got := asJson[key]
		if rule.Checker.checker(got, rule.Value) {
			continue
		}
		failed = true
		if rule.Checker.name == DoesNotExistTest.name {
			msg.WriteString(fmt.Sprintf("%s: found stat entry when there should not be one\n", key))
		} else {
			msg.WriteString(fmt.Sprintf("%s: got %v, expected to pass %s with %v\n", key, got, rule.Checker.name, rule.Value))
		}
	}
	if failed {
		pretty, _ := flat.MarshalJSONPretty()
		t.Errorf("%s: stats registry error:\n%s%s", tag, msg.String(), pretty)
	}
}
