package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	remembered   map[string]string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:         tc,
		remembered: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a crashdb server is running$`, s.aServerIsRunning)
	sc.Step(`^the database is empty$`, s.theDatabaseIsEmpty)

	// Request steps
	sc.Step(`^I POST "([^"]*)" with:$`, s.iPostWith)
	sc.Step(`^I PUT "([^"]*)" with:$`, s.iPutWith)
	sc.Step(`^I GET "([^"]*)"$`, s.iGet)
	sc.Step(`^I DELETE "([^"]*)"$`, s.iDelete)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the response field "([^"]*)" should have length (\d+)$`, s.theResponseFieldShouldHaveLength)
	sc.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, s.iRememberTheResponseField)

	// Database steps
	sc.Step(`^the table "([^"]*)" should have (\d+) rows?$`, s.theTableShouldHaveRows)
}

func (s *StepsContext) aServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) theDatabaseIsEmpty() error {
	// TRUNCATE the root tables; satellites cascade
	return s.tc.DB.Exec(`TRUNCATE crashes, vehicle, people CASCADE`).Error
}

// expand substitutes ${name} references with remembered values
func (s *StepsContext) expand(in string) string {
	for name, value := range s.remembered {
		in = strings.ReplaceAll(in, "${"+name+"}", value)
	}
	return in
}

func (s *StepsContext) doRequest(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, s.tc.ServerURL+s.expand(path), body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) iPostWith(path string, body *godog.DocString) error {
	return s.doRequest("POST", path, bytes.NewReader([]byte(s.expand(body.Content))))
}

func (s *StepsContext) iPutWith(path string, body *godog.DocString) error {
	return s.doRequest("PUT", path, bytes.NewReader([]byte(s.expand(body.Content))))
}

func (s *StepsContext) iGet(path string) error {
	return s.doRequest("GET", path, nil)
}

func (s *StepsContext) iDelete(path string) error {
	return s.doRequest("DELETE", path, nil)
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) responseField(field string) (string, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &doc); err != nil {
		return "", fmt.Errorf("response is not a JSON object: %w", err)
	}

	value, ok := doc[field]
	if !ok || value == nil {
		return "", fmt.Errorf("field %q not present in response: %s", field, s.responseBody)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		// Render integral numbers without a decimal point
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v)), nil
		}
		return fmt.Sprintf("%g", v), nil
	case bool:
		return fmt.Sprintf("%t", v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (s *StepsContext) theResponseFieldShouldBe(field, expected string) error {
	actual, err := s.responseField(field)
	if err != nil {
		return err
	}
	if actual != s.expand(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q", field, s.expand(expected), actual)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldHaveLength(field string, length int) error {
	actual, err := s.responseField(field)
	if err != nil {
		return err
	}
	if len(actual) != length {
		return fmt.Errorf("expected field %q to have length %d, got %d (%q)", field, length, len(actual), actual)
	}
	return nil
}

func (s *StepsContext) iRememberTheResponseField(field, name string) error {
	value, err := s.responseField(field)
	if err != nil {
		return err
	}
	s.remembered[name] = value
	return nil
}

func (s *StepsContext) theTableShouldHaveRows(table string, count int) error {
	// Table names come from feature files, not user input
	var actual int64
	if err := s.tc.DB.Table(table).Count(&actual).Error; err != nil {
		return err
	}
	if actual != int64(count) {
		return fmt.Errorf("expected table %s to have %d rows, got %d", table, count, actual)
	}
	return nil
}
