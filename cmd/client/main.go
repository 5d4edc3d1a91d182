package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"chatroom/internal/api"
	"chatroom/pkg/chat"
	"github.com/gorilla/websocket"
)

func main() {
	addr := flag.String("addr", "localhost:3000", "server address")
	user := flag.String("user", "", "display name to sign in with")
	flag.Parse()

	if *user == "" {
		log.Fatal("-user is required")
	}

	base := "http://" + *addr

	if err := signIn(base, *user); err != nil {
		log.Fatalf("sign in failed: %v", err)
	}

	// History first, then subscribe. An event committed between the two
	// calls can be missed or shown twice; that window is accepted.
	history, err := fetchMessages(base)
	if err != nil {
		log.Fatalf("failed to fetch history: %v", err)
	}
	for _, message := range history {
		fmt.Printf("[%d] %s: %s\n", message.Index, message.UserName, message.Body)
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+*addr+"/ws", nil)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	go streamEvents(conn)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}
		if err := send(base, *user, text); err != nil {
			log.Printf("send failed: %v", err)
		}
	}
}

func streamEvents(conn *websocket.Conn) {
	for {
		var event struct {
			Kind    chat.EventKind `json:"kind"`
			Index   int            `json:"index"`
			User    string         `json:"user"`
			Message string         `json:"message"`
		}
		if err := conn.ReadJSON(&event); err != nil {
			log.Fatalf("stream closed: %v", err)
		}

		switch event.Kind {
		case chat.EventSignIn:
			fmt.Printf("* %s signed in\n", event.User)
		case chat.EventMessage:
			fmt.Printf("[%d] %s: %s\n", event.Index, event.User, event.Message)
		}
	}
}

func signIn(base, user string) error {
	body, err := json.Marshal(api.SignInRequest{User: user})
	if err != nil {
		return err
	}

	resp, err := http.Post(base+"/signin", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkResponse(resp)
}

func fetchMessages(base string) ([]chat.Message, error) {
	resp, err := http.Get(base + "/messages")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var history api.MessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, err
	}
	return history.Messages, nil
}

func send(base, user, text string) error {
	body, err := json.Marshal(api.SendMessageRequest{User: user, Message: text})
	if err != nil {
		return err
	}

	resp, err := http.Post(base+"/messages", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkResponse(resp)
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	var apiErr api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%s", apiErr.Error)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
