/*
Package pitchsdk provides a client SDK for the pitchdeck API.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: unauthenticated operations (signup, login, health probes)
  - Session: operations that need a bearer token

Create an SDKClient and authenticate to obtain a Session:

	client := pitchsdk.NewSDKClient("http://localhost:5099")

	session, err := client.Signup(ctx, pitchsdk.SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password123",
		Role:     pitchsdk.RoleFounder,
	})

	pitch, err := session.CreatePitch(ctx, pitchsdk.PitchRequest{...})

Investors mark and list interest:

	investor, err := client.Login(ctx, "ivan@example.com", "password123")
	_, err = investor.MarkInterest(ctx, pitch.ID)
	pitches, err := investor.Interests(ctx)

Tokens obtained through the Google sign-in redirect can be wrapped with
NewSessionFromToken.

# Errors

Every non-success response is returned as *APIError carrying the HTTP status,
the envelope message and any field validation errors. Use IsStatus or the
IsUnauthorized, IsForbidden, IsNotFound and IsConflict helpers to branch on
them.

# Thread Safety

SDKClient and Session are safe for concurrent use. A Session switches to the
new token when a profile update changes the user's role.
*/
package pitchsdk
