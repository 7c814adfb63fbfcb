/*
Package tasksdk provides a client SDK for the tasks API, alongside the
request, response and error types the server writes.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (registration, login, health)
  - Session: task operations authenticated with a bearer token

Typical flow:

	client := tasksdk.NewSDKClient("http://localhost:8080")

	_, err := client.Register(ctx, tasksdk.RegisterRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Password:  "pw123",
	})

	session, err := client.Login(ctx, "alice", "pw123")

	created, err := session.CreateTask(ctx, tasksdk.TaskRequest{Title: "t1", Priority: 3})
	tasks, err := session.ListTasks(ctx, tasksdk.ListOptions{})

Sessions do not refresh tokens. Once the access token expires every call fails
with an *APIError carrying status 401 and the caller must log in again.

# Error Handling

Non-2xx responses are returned as *APIError, which carries the HTTP status and
the "detail" message from the body:

	var apiErr *tasksdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// task is absent or owned by someone else
	}
*/
package tasksdk
