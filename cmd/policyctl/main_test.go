package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRequestMapping(t *testing.T) {
	flags := generateFlags{
		company:    "Acme Corp",
		industry:   "finance",
		state:      "NY",
		employees:  120,
		tools:      []string{"ChatGPT"},
		priority:   "strict",
		risk:       "low",
		benchmarks: true,
		frameworks: []string{"ISO 42001"},
	}
	req := flags.request()
	if req.CompanyName != "Acme Corp" || req.Industry != "finance" || req.State != "NY" {
		t.Errorf("request = %+v", req)
	}
	if !req.IncludeBenchmarks || req.CompliancePriority != "strict" || req.RiskTolerance != "low" {
		t.Errorf("enhanced options lost: %+v", req)
	}
	if len(req.CustomComplianceFrameworks) != 1 {
		t.Errorf("frameworks lost: %+v", req.CustomComplianceFrameworks)
	}
}

func TestRunGenerateWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "policy.html")
	flags := generateFlags{
		company:   "Acme Corp",
		industry:  "technology",
		state:     "CA",
		employees: 50,
		tools:     []string{"ChatGPT"},
		format:    "html",
		out:       out,
	}
	if err := runGenerate(flags); err != nil {
		t.Fatalf("generate: %v", err)
	}
	body, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(body), "Acme Corp") {
		t.Error("output missing company name")
	}
}

func TestRunGenerateRejectsBadFlags(t *testing.T) {
	if err := runGenerate(generateFlags{format: "docx"}); err == nil {
		t.Error("unsupported format should fail")
	}
	if err := runGenerate(generateFlags{format: "html"}); err == nil {
		t.Error("empty request should fail validation")
	}
}
