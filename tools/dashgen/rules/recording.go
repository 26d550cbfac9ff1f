package rules

// RecordingRules returns a PrometheusRule CR with the pre-computed rates
// used by the dashboard and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "ivaluate-recording-rules",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ivaluate-recording",
					Rules: []Rule{
						{
							Record: "ivaluate:http_requests:rate5m",
							Expr:   `sum(rate(ivaluate_http_requests_total[5m])) by (path)`,
						},
						{
							Record: "ivaluate:http_errors:rate5m",
							Expr:   `sum(rate(ivaluate_http_requests_total{status=~"5.."}[5m])) by (path)`,
						},
						{
							Record: "ivaluate:estimates:rate5m",
							Expr:   `sum(rate(ivaluate_estimates_total[5m])) by (source)`,
						},
						{
							Record: "ivaluate:estimate_failures:rate5m",
							Expr:   `sum(rate(ivaluate_estimate_failures_total[5m])) by (reason)`,
						},
						{
							Record: "ivaluate:rollup_errors:rate1h",
							Expr:   `sum(rate(ivaluate_rollup_errors_total[1h]))`,
						},
					},
				},
			},
		},
	}
}
