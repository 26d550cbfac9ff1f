package rules

// AlertRules returns a PrometheusRule CR with the operational alerts for
// the iValuate server.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "ivaluate-alerts",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ivaluate-alerts",
					Rules: []Rule{
						alert("IvaluateDown", `absent(up{job="ivaluate"})`, "2m", "critical",
							"iValuate is down",
							"The ivaluate job has been absent for more than 2 minutes."),
						alert("IvaluateReadinessDown", `ivaluate_readyz_up == 0`, "2m", "critical",
							"iValuate cannot reach its store",
							"The readiness probe has reported the store unreachable for more than 2 minutes."),
						alert("IvaluateHighErrorRate",
							`sum(ivaluate:http_errors:rate5m) / sum(ivaluate:http_requests:rate5m) > 0.05`,
							"5m", "warning",
							"High HTTP error rate on iValuate",
							"More than 5% of HTTP requests returned 5xx over the last 5 minutes."),
						alert("IvaluateUpstreamFailures",
							`ivaluate:estimate_failures:rate5m{reason="upstream"} > 0`,
							"5m", "warning",
							"Market price requests are failing on store errors",
							"Market price estimation has been hitting store failures for more than 5 minutes."),
						alert("IvaluateRollupStale",
							`time() - ivaluate_rollup_last_success_timestamp > 26 * 3600`,
							"15m", "warning",
							"Price history rollup is stale",
							"No price history rollup has completed in the last 26 hours; estimates fall back to current listings."),
						alert("IvaluateRollupErrors", `ivaluate:rollup_errors:rate1h > 0`, "1h", "warning",
							"Price history rollup is failing for some products",
							"Per-product rollup failures have been recorded over the last hour."),
					},
				},
			},
		},
	}
}

func alert(name, expr, forDuration, severity, summary, description string) Rule {
	return Rule{
		Alert: name,
		Expr:  expr,
		For:   forDuration,
		Labels: map[string]string{
			"severity": severity,
		},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
