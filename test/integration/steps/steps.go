package steps

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

func registerSetupSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^the API server is running$`, t.theAPIServerIsRunning)
	ctx.Step(`^today is "([^"]*)"$`, t.todayIs)
	ctx.Step(`^I am logged in as "([^"]*)"$`, t.iAmLoggedInAs)
	ctx.Step(`^I am not authenticated$`, t.iAmNotAuthenticated)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)
	ctx.Step(`^the category "([^"]*)" is saved as "([^"]*)"$`, t.theCategoryIsSavedAs)
}

func registerRequestSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, t.iSaveTheResponseFieldAs)
}

func registerResponseSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, t.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, t.theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, t.theResponseListShouldHaveItems)
}

func registerDatabaseSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, t.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table where "([^"]*)" is "([^"]*)"$`, t.theDbShouldContainObjectsWhere)
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) todayIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		day, dayErr := time.Parse("2006-01-02", value)
		if dayErr != nil {
			return fmt.Errorf("invalid date %q: %w", value, err)
		}
		now = day.Add(12 * time.Hour)
	}
	t.timeMock.Set(now.UTC())
	return nil
}

func (t *testContext) iAmLoggedInAs(email string) error {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"name":     "Test User",
		"password": testPassword,
	})
	if err != nil {
		return err
	}

	if err := t.send("POST", "/api/v1/auth/register", body); err != nil {
		return err
	}
	if t.status != 201 {
		return fmt.Errorf("register failed with status %d: %s", t.status, string(t.body))
	}

	token, err := t.field("access_token")
	if err != nil {
		return err
	}
	t.accessToken = fmt.Sprintf("%v", token)

	refresh, err := t.field("refresh_token")
	if err != nil {
		return err
	}
	t.vars["refresh_token"] = fmt.Sprintf("%v", refresh)
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.expand(value)
	return nil
}

func (t *testContext) theCategoryIsSavedAs(name, variable string) error {
	var id string
	err := t.database.DB().
		Table("categories").
		Select("id").
		Where("name = ?", name).
		Scan(&id).Error
	if err != nil {
		return fmt.Errorf("failed to look up category %q: %w", name, err)
	}
	if id == "" {
		return fmt.Errorf("category %q not found", name)
	}
	t.vars[variable] = id
	return nil
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.send(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	return t.send(method, endpoint, []byte(t.expand(body.Content)))
}

func (t *testContext) iSaveTheResponseFieldAs(path, variable string) error {
	value, err := t.field(path)
	if err != nil {
		return err
	}
	t.vars[variable] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.status != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.status, string(t.body))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.body, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.body), t.expand(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(t.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.field(path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != t.expand(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", path, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(path string) error {
	value, err := t.field(path)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", path, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	_, err := t.field(path)
	return err
}

func (t *testContext) theResponseListShouldHaveItems(path string, expected int) error {
	value, err := t.field(path)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		if value == nil && expected == 0 {
			return nil
		}
		return fmt.Errorf("field '%s' is not a list: %v", path, value)
	}
	if len(list) != expected {
		return fmt.Errorf("list '%s' expected %d items, got %d. Body: %s", path, expected, len(list), string(t.body))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	var count int64
	if err := t.database.DB().Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	if int(count) != expected {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsWhere(expected int, table, column, value string) error {
	var count int64
	err := t.database.DB().
		Table(table).
		Where(fmt.Sprintf("%s = ?", column), t.expand(value)).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	if int(count) != expected {
		return fmt.Errorf("expected %d rows in %s where %s = %s, got %d", expected, table, column, value, count)
	}
	return nil
}
