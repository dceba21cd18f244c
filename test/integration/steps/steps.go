//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/barbershop/backend/config"
	"github.com/barbershop/backend/internal/infra/dependency"
	"github.com/barbershop/backend/internal/integration/email"
	"github.com/barbershop/backend/internal/integration/persistence/model"
	"github.com/barbershop/backend/test/integration/mock"
)

const (
	resendEmailsPath = "/emails"
	tableTimeLayout  = "2006-01-02 15:04"
)

type testContext struct {
	cfg        *config.Config
	server     *httptest.Server
	injector   *dependency.Injector
	db         *mock.Db
	redis      *redis.Client
	timeMock   *mock.Time
	resendMock *mock.ApiMock
	client     *http.Client
	headers    map[string]string
	response   *response
}

type response struct {
	status      int
	contentType string
	raw         []byte
	body        any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:     &http.Client{Timeout: 10 * time.Second},
		timeMock:   mock.NewTime(),
		db:         mock.NewDb(model.AllModels()...),
		redis:      mock.NewRedis(),
		resendMock: mock.NewApiServer(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Given(`^the write rate limit is (\d+) requests? per minute$`, test.theWriteRateLimitIs)

	// Data setup steps
	ctx.Given(`^the following services were recorded:$`, test.theFollowingServicesWereRecorded)
	ctx.Given(`^the following expenses were recorded:$`, test.theFollowingExpensesWereRecorded)
	ctx.Given(`^the email provider responds with status (\d+)$`, test.theEmailProviderRespondsWithStatus)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^the email worker processes the queue$`, test.theEmailWorkerProcessesTheQueue)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response content type should be "([^"]*)"$`, test.theResponseContentTypeShouldBe)
	ctx.Then(`^the response body should start with "([^"]*)"$`, test.theResponseBodyShouldStartWith)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email assertion steps
	ctx.Then(`^the email provider should have received (\d+) requests?$`, test.theEmailProviderShouldHaveReceivedRequests)
	ctx.Then(`^the email sent to the provider should have "([^"]*)" equal to "([^"]*)"$`, test.theEmailSentShouldHave)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.timeMock.SetCurrentTime(time.Now())

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Report.Timezone = "UTC"
	cfg.Report.CurrencySymbol = "₦"
	cfg.Report.BusinessName = "Fresh Cuts"
	cfg.RateLimit.MaxRequests = 1000
	cfg.RateLimit.Window = time.Minute
	cfg.Email.FromName = "Fresh Cuts Reports"
	cfg.Email.FromEmail = "reports@freshcuts.test"
	t.cfg = cfg

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	t.resendMock.Close()
}

func (t *testContext) startServer() error {
	if t.server != nil {
		t.server.Close()
	}

	t.resendMock.Reset()
	t.resendMock.Start()
	t.resendMock.SetResponse(-1, http.MethodPost, resendEmailsPath, http.StatusOK, map[string]any{"id": "re_test_email"})

	sender := email.NewResendClient("re_test_key", t.resendMock.GetUrl(), t.cfg.Email.FromName, t.cfg.Email.FromEmail)

	injector, err := dependency.NewInjector(t.cfg, t.db.DbConn, t.redis, sender, t.timeMock.Now)
	if err != nil {
		return err
	}
	t.injector = injector
	t.server = httptest.NewServer(injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) theCurrentTimeIs(value string) error {
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(current)
	return nil
}

func (t *testContext) theWriteRateLimitIs(limit int) error {
	t.cfg.RateLimit.MaxRequests = limit
	t.resendMock.Close()
	return t.startServer()
}

func (t *testContext) theFollowingServicesWereRecorded(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		customerID, err := t.customerFor(row["customer_name"], row["customer_phone"], row["date"])
		if err != nil {
			return err
		}

		serviceDate, err := time.Parse(tableTimeLayout, row["date"])
		if err != nil {
			return fmt.Errorf("invalid service date %q: %w", row["date"], err)
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}

		record := &model.ServiceRecordModel{
			ID:            uuid.New(),
			CustomerID:    customerID,
			ServiceType:   row["service_type"],
			BarberName:    row["barber_name"],
			AmountPaid:    amount,
			PaymentMethod: row["payment_method"],
			ServiceDate:   serviceDate,
			RecordedBy:    "seed",
			CreatedAt:     serviceDate,
		}
		if err := t.db.DbConn.Omit("Customer").Create(record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) customerFor(name, phone, date string) (uuid.UUID, error) {
	var existing model.CustomerModel
	err := t.db.DbConn.Where("phone = ?", phone).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	createdAt, err := time.Parse(tableTimeLayout, date)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	customer := &model.CustomerModel{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		CreatedAt: createdAt,
	}
	if err := t.db.DbConn.Omit("Services").Create(customer).Error; err != nil {
		return uuid.Nil, err
	}
	return customer.ID, nil
}

func (t *testContext) theFollowingExpensesWereRecorded(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		expenseDate, err := time.Parse(tableTimeLayout, row["date"])
		if err != nil {
			return fmt.Errorf("invalid expense date %q: %w", row["date"], err)
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}

		expense := &model.ExpenseModel{
			ID:          uuid.New(),
			Category:    row["category"],
			Amount:      amount,
			Description: row["description"],
			ExpenseDate: expenseDate,
			RecordedBy:  "seed",
			CreatedAt:   expenseDate,
		}
		if err := t.db.DbConn.Create(expense).Error; err != nil {
			return err
		}
	}
	return nil
}

// tableRows maps each data row by the header row's cell values.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, errors.New("table needs a header row and at least one data row")
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, r := range table.Rows[1:] {
		if len(r.Cells) != len(header) {
			return nil, fmt.Errorf("expected %d cells, got %d", len(header), len(r.Cells))
		}
		row := make(map[string]string, len(header))
		for i, cell := range r.Cells {
			row[header[i].Value] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *testContext) theEmailProviderRespondsWithStatus(status int) error {
	t.resendMock.SetResponse(-1, http.MethodPost, resendEmailsPath, status, map[string]any{
		"statusCode": status,
		"name":       "application_error",
		"message":    "provider unavailable",
	})
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(body.Content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("server is not running")
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		raw:         bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	t.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseContentTypeShouldBe(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.HasPrefix(t.response.contentType, expected) {
		return fmt.Errorf("expected content type %q, got %q", expected, t.response.contentType)
	}
	return nil
}

// theResponseBodyShouldStartWith compares the leading bytes of the body with
// a hex-escaped prefix such as \x89PNG.
func (t *testContext) theResponseBodyShouldStartWith(prefix string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	expected, err := strconv.Unquote(`"` + prefix + `"`)
	if err != nil {
		return fmt.Errorf("invalid prefix %q: %w", prefix, err)
	}
	if !bytes.HasPrefix(t.response.raw, []byte(expected)) {
		return fmt.Errorf("response body does not start with %q", prefix)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceivedRequests(count int) error {
	got := t.resendMock.RequestCount(http.MethodPost, resendEmailsPath)
	if got != count {
		return fmt.Errorf("expected %d requests to the email provider, got %d", count, got)
	}
	return nil
}

func (t *testContext) theEmailSentShouldHave(field, expected string) error {
	body := t.resendMock.GetRequestBody(http.MethodPost, resendEmailsPath, 0)
	if body == nil {
		return errors.New("no email reached the provider")
	}

	actual := fmt.Sprintf("%v", getFieldValue(body, field))
	if actual != expected {
		return fmt.Errorf("email field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
