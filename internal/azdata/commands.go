package azdata

import (
	"context"
	"encoding/json"
)

// Typed sub-commands over Invoke. Each is a pure argument-list builder:
// flag order is stable and optional fields are omitted when empty, so
// invocations are reproducible and assertable.

// LoginArgs identifies a data controller and the account used against it.
// The password travels only in the environment of the single login call.
type LoginArgs struct {
	Namespace string
	Username  string
	Password  string
}

func (a LoginArgs) args() []string {
	args := []string{"login"}
	args = appendFlag(args, "--namespace", a.Namespace)
	return args
}

// Login authenticates against the data controller in the given namespace.
func Login(ctx context.Context, c *Client, a LoginArgs) error {
	env := map[string]string{
		"AZDATA_USERNAME": a.Username,
		"AZDATA_PASSWORD": a.Password,
	}
	_, err := Invoke[json.RawMessage](ctx, c, a.args(), env)
	return err
}

// DataControllerCreateArgs describes `arc dc create`.
type DataControllerCreateArgs struct {
	Name             string
	Namespace        string
	Subscription     string
	ResourceGroup    string
	Location         string
	ConnectivityMode string
	ProfileName      string
	StorageClass     string
}

func (a DataControllerCreateArgs) args() []string {
	args := []string{"arc", "dc", "create"}
	args = appendFlag(args, "-n", a.Name)
	args = appendFlag(args, "--namespace", a.Namespace)
	args = appendFlag(args, "--subscription", a.Subscription)
	args = appendFlag(args, "--resource-group", a.ResourceGroup)
	args = appendFlag(args, "--location", a.Location)
	args = appendFlag(args, "--connectivity-mode", a.ConnectivityMode)
	args = appendFlag(args, "--profile-name", a.ProfileName)
	args = appendFlag(args, "--storage-class", a.StorageClass)
	return args
}

// CreateDataController deploys a new Arc data controller.
func CreateDataController(ctx context.Context, c *Client, a DataControllerCreateArgs) error {
	_, err := Invoke[json.RawMessage](ctx, c, a.args(), nil)
	return err
}

// DeleteDataController removes the data controller in the given namespace.
func DeleteDataController(ctx context.Context, c *Client, name, namespace string) error {
	args := []string{"arc", "dc", "delete"}
	args = appendFlag(args, "-n", name)
	args = appendFlag(args, "--namespace", namespace)
	args = append(args, "--force")
	_, err := Invoke[json.RawMessage](ctx, c, args, nil)
	return err
}

// DcEndpoint is one row of `arc dc endpoint list`.
type DcEndpoint struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Endpoint    string `json:"endpoint"`
	Protocol    string `json:"protocol"`
}

// ListDataControllerEndpoints returns the controller's service endpoints.
func ListDataControllerEndpoints(ctx context.Context, c *Client) (CommandResult[[]DcEndpoint], error) {
	return Invoke[[]DcEndpoint](ctx, c, []string{"arc", "dc", "endpoint", "list"}, nil)
}

// SqlMiResource is one row of `arc sql mi list`.
type SqlMiResource struct {
	Name           string `json:"name"`
	Replicas       string `json:"replicas"`
	ServerEndpoint string `json:"serverEndpoint"`
	State          string `json:"state"`
}

// SqlMiCreateArgs describes `arc sql mi create`.
type SqlMiCreateArgs struct {
	Name             string
	CoresLimit       string
	CoresRequest     string
	MemoryLimit      string
	MemoryRequest    string
	StorageClassData string
	StorageClassLogs string
	Replicas         string
}

func (a SqlMiCreateArgs) args() []string {
	args := []string{"arc", "sql", "mi", "create"}
	args = appendFlag(args, "-n", a.Name)
	args = appendFlag(args, "--cores-limit", a.CoresLimit)
	args = appendFlag(args, "--cores-request", a.CoresRequest)
	args = appendFlag(args, "--memory-limit", a.MemoryLimit)
	args = appendFlag(args, "--memory-request", a.MemoryRequest)
	args = appendFlag(args, "--storage-class-data", a.StorageClassData)
	args = appendFlag(args, "--storage-class-logs", a.StorageClassLogs)
	args = appendFlag(args, "--replicas", a.Replicas)
	return args
}

// CreateSqlMi provisions a SQL managed instance on the controller.
func CreateSqlMi(ctx context.Context, c *Client, a SqlMiCreateArgs) error {
	_, err := Invoke[json.RawMessage](ctx, c, a.args(), nil)
	return err
}

// DeleteSqlMi deletes a SQL managed instance by name.
func DeleteSqlMi(ctx context.Context, c *Client, name string) error {
	args := appendFlag([]string{"arc", "sql", "mi", "delete"}, "-n", name)
	_, err := Invoke[json.RawMessage](ctx, c, args, nil)
	return err
}

// ListSqlMi lists SQL managed instances.
func ListSqlMi(ctx context.Context, c *Client) (CommandResult[[]SqlMiResource], error) {
	return Invoke[[]SqlMiResource](ctx, c, []string{"arc", "sql", "mi", "list"}, nil)
}

// ShowSqlMi returns the full resource document for one instance.
func ShowSqlMi(ctx context.Context, c *Client, name string) (CommandResult[json.RawMessage], error) {
	args := appendFlag([]string{"arc", "sql", "mi", "show"}, "-n", name)
	return Invoke[json.RawMessage](ctx, c, args, nil)
}

// SqlMiEditArgs describes `arc sql mi edit`. Empty fields are omitted.
type SqlMiEditArgs struct {
	Name          string
	CoresLimit    string
	CoresRequest  string
	MemoryLimit   string
	MemoryRequest string
}

func (a SqlMiEditArgs) args() []string {
	args := []string{"arc", "sql", "mi", "edit"}
	args = appendFlag(args, "-n", a.Name)
	args = appendFlag(args, "--cores-limit", a.CoresLimit)
	args = appendFlag(args, "--cores-request", a.CoresRequest)
	args = appendFlag(args, "--memory-limit", a.MemoryLimit)
	args = appendFlag(args, "--memory-request", a.MemoryRequest)
	return args
}

// EditSqlMi updates resource settings on an existing instance.
func EditSqlMi(ctx context.Context, c *Client, a SqlMiEditArgs) error {
	_, err := Invoke[json.RawMessage](ctx, c, a.args(), nil)
	return err
}

// PostgresResource is one row of `arc postgres server list`.
type PostgresResource struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Workers string `json:"workers"`
}

// PostgresCreateArgs describes `arc postgres server create`.
type PostgresCreateArgs struct {
	Name         string
	Workers      string
	StorageClass string
}

func (a PostgresCreateArgs) args() []string {
	args := []string{"arc", "postgres", "server", "create"}
	args = appendFlag(args, "-n", a.Name)
	args = appendFlag(args, "--workers", a.Workers)
	args = appendFlag(args, "--storage-class", a.StorageClass)
	return args
}

// CreatePostgresServer provisions a PostgreSQL server group.
func CreatePostgresServer(ctx context.Context, c *Client, a PostgresCreateArgs) error {
	_, err := Invoke[json.RawMessage](ctx, c, a.args(), nil)
	return err
}

// DeletePostgresServer deletes a server group by name.
func DeletePostgresServer(ctx context.Context, c *Client, name string) error {
	args := appendFlag([]string{"arc", "postgres", "server", "delete"}, "-n", name)
	args = append(args, "--force")
	_, err := Invoke[json.RawMessage](ctx, c, args, nil)
	return err
}

// ListPostgresServers lists server groups.
func ListPostgresServers(ctx context.Context, c *Client) (CommandResult[[]PostgresResource], error) {
	return Invoke[[]PostgresResource](ctx, c, []string{"arc", "postgres", "server", "list"}, nil)
}

// ShowPostgresServer returns the full resource document for one group.
func ShowPostgresServer(ctx context.Context, c *Client, name string) (CommandResult[json.RawMessage], error) {
	args := appendFlag([]string{"arc", "postgres", "server", "show"}, "-n", name)
	return Invoke[json.RawMessage](ctx, c, args, nil)
}

// PostgresEditArgs describes `arc postgres server edit`. Empty fields are
// omitted so a partial edit only touches what the caller set.
type PostgresEditArgs struct {
	Name          string
	CoresLimit    string
	CoresRequest  string
	MemoryLimit   string
	MemoryRequest string
	Workers       string
}

func (a PostgresEditArgs) args() []string {
	args := []string{"arc", "postgres", "server", "edit"}
	args = appendFlag(args, "-n", a.Name)
	args = appendFlag(args, "--cores-limit", a.CoresLimit)
	args = appendFlag(args, "--cores-request", a.CoresRequest)
	args = appendFlag(args, "--memory-limit", a.MemoryLimit)
	args = appendFlag(args, "--memory-request", a.MemoryRequest)
	args = appendFlag(args, "--workers", a.Workers)
	return args
}

// EditPostgresServer updates resource settings on a server group.
func EditPostgresServer(ctx context.Context, c *Client, a PostgresEditArgs) error {
	_, err := Invoke[json.RawMessage](ctx, c, a.args(), nil)
	return err
}

// appendFlag adds flag+value unless the value is empty.
func appendFlag(args []string, flag, value string) []string {
	if value == "" {
		return args
	}
	return append(args, flag, value)
}
