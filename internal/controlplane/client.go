// Package controlplane talks to the remote control plane that assigns
// installer registrations to application servers. The agent only consumes the
// InstallerInfo record; everything else about the control plane is opaque.
package controlplane

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/conn-castle/deploy-agent/internal/messages"
)

// InstallerInfo is the registration record returned by the control plane.
// Field names are camel-cased on the wire and converted to the store's
// snake_case naming on ingestion.
type InstallerInfo struct {
	URL            string `json:"url"`
	InstallerToken string `json:"installerToken"`
	AppName        string `json:"appName"`
	AppVersion     string `json:"appVersion"`
	AppFileName    string `json:"appFileName"`
	AppRunPort     uint32 `json:"appRunPort"`
	JDKName        string `json:"jdkName"`
	JDKVersion     string `json:"jdkVersion"`
	JDKFileName    string `json:"jdkFileName"`
}

type registerRequest struct {
	RegistrationToken string `json:"registrationToken"`
	ServerIdentity    string `json:"serverIdentity"`
	AppRunPort        uint32 `json:"appRunPort,omitempty"`
}

// Client calls the control plane over HTTP. Registration is the one call in
// the agent where transient failures are retried; artifact downloads are not.
type Client struct {
	http *retryablehttp.Client
}

// NewClient returns a control-plane client with default retry behavior.
func NewClient() *Client {
	client := retryablehttp.NewClient()
	client.Logger = nil
	return &Client{http: client}
}

// Register obtains an InstallerInfo for this server. port is the requested
// run port; zero lets the control plane choose.
func (c *Client) Register(ctx context.Context, baseURL, registrationToken, serverIdentity string, port uint32) (*InstallerInfo, error) {
	if baseURL == "" {
		return nil, errors.New(messages.ControlPlaneURLRequired)
	}

	body, err := json.Marshal(registerRequest{
		RegistrationToken: registrationToken,
		ServerIdentity:    serverIdentity,
		AppRunPort:        port,
	})
	if err != nil {
		return nil, fmt.Errorf(messages.ControlPlaneRequestErrFmt, "register", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/installers", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf(messages.ControlPlaneRequestErrFmt, "register", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.ControlPlaneTransportFmt, "register", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf(messages.ControlPlaneStatusFmt, "register", resp.StatusCode)
	}

	var info InstallerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf(messages.ControlPlaneDecodeFmt, err)
	}
	return &info, nil
}

// Unregister tells the control plane the installer no longer runs here.
func (c *Client) Unregister(ctx context.Context, baseURL, installerToken string) error {
	if baseURL == "" {
		return errors.New(messages.ControlPlaneURLRequired)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodDelete, baseURL+"/installers/"+installerToken, nil)
	if err != nil {
		return fmt.Errorf(messages.ControlPlaneRequestErrFmt, "unregister", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf(messages.ControlPlaneTransportFmt, "unregister", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf(messages.ControlPlaneStatusFmt, "unregister", resp.StatusCode)
	}
	return nil
}
