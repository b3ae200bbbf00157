package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leofalp/oaikit/config"
	"github.com/leofalp/oaikit/core/catalog"
	"github.com/leofalp/oaikit/internal/utils"
	"github.com/leofalp/oaikit/providers/ai/openai"
)

func (a *app) completeCmd() *cobra.Command {
	var (
		model       = catalog.GPT3
		maxTokens   int
		temperature float32
		n           int
	)
	cmd := &cobra.Command{
		Use:     "complete <prompt>",
		Short:   "Run a text completion",
		Example: "  oaikit complete --model TEXT_DAVINCI_003 \"Say hi\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := openai.NewTextRequest(strings.Join(args, " "), model)
			req.MaxTokens, req.Temperature, req.N = maxTokens, temperature, n

			res, err := a.newClient().SendText(contextOf(cmd), req).Await(contextOf(cmd))
			if err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("completion failed: %s", res.Status)
			}
			for _, choice := range res.Choices {
				fmt.Fprintln(cmd.OutOrStdout(), choice.Text)
			}
			return nil
		},
	}
	cmd.Flags().Var(newKeyFlag(&model), "model", "text model, symbolic name or wire string")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", openai.DefaultMaxTokens, "maximum tokens to generate")
	cmd.Flags().Float32Var(&temperature, "temperature", openai.DefaultTemperature, "sampling temperature")
	cmd.Flags().IntVarP(&n, "n", "n", openai.DefaultN, "number of completions")
	return cmd
}

func (a *app) chatCmd() *cobra.Command {
	var (
		model       = catalog.GPT4
		system      string
		maxTokens   int
		temperature float32
	)
	cmd := &cobra.Command{
		Use:     "chat <message>",
		Short:   "Run a chat completion",
		Example: "  oaikit chat --system \"be brief\" \"What is Go?\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var messages []openai.Message
			if system != "" {
				messages = append(messages, openai.SystemMessage(system))
			}
			messages = append(messages, openai.UserMessage(strings.Join(args, " ")))

			req := openai.NewChatRequest(model, messages...)
			req.MaxTokens, req.Temperature = maxTokens, temperature

			res, err := a.newClient().SendChat(contextOf(cmd), req).Await(contextOf(cmd))
			if err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("chat failed: %s", res.Status)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text())
			return nil
		},
	}
	cmd.Flags().Var(newKeyFlag(&model), "model", "chat model, symbolic name or wire string")
	cmd.Flags().StringVar(&system, "system", "", "system message sent before the user message")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", openai.DefaultMaxTokens, "maximum tokens to generate")
	cmd.Flags().Float32Var(&temperature, "temperature", openai.DefaultTemperature, "sampling temperature")
	return cmd
}

func (a *app) imageCmd() *cobra.Command {
	var (
		size   = catalog.SizeSmall
		n      int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:     "image <prompt>",
		Short:   "Generate images and download them",
		Example: "  oaikit image --size LARGE --n 2 \"a cat in a box\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := openai.NewImageRequest(strings.Join(args, " "), size)
			req.N = n

			res, err := a.newClient().SendImage(contextOf(cmd), req).Await(contextOf(cmd))
			if err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("image generation failed: %s", res.Status)
			}
			if asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(res, true))
				return nil
			}
			for i, slot := range res.Data {
				location := slot.Path
				if location == "" {
					location = slot.URL
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d bytes\t%s\n", i, slot.MimeType, len(slot.Data), location)
			}
			return nil
		},
	}
	cmd.Flags().Var(newKeyFlag(&size), "size", "image size: SMALL, MEDIUM, LARGE or 256x256, 512x512, 1024x1024")
	cmd.Flags().IntVarP(&n, "n", "n", openai.DefaultN, "number of images")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the response as JSON")
	return cmd
}

func (a *app) sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <text|chat|image> <file|->",
		Short: "Send a saved request body, converting enum ordinals to wire strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := openai.ParseFamily(args[0])
			if err != nil {
				return err
			}
			body, err := a.readInput(cmd, args[1])
			if err != nil {
				return err
			}

			res, err := a.newClient().SendRaw(contextOf(cmd), family, body).Await(contextOf(cmd))
			if err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("request failed: %s", res.Status)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(res.Body))
			return nil
		},
	}
}

func (a *app) readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return data, nil
}

func (a *app) modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models [kind]",
		Short: "List the symbolic keys and their wire strings",
		Long:  "List the symbolic keys of one kind (text, chat, text_edit, audio, image_size, role, ...) or of every kind.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := catalog.Kinds()
			if len(args) == 1 {
				kind, err := catalog.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []catalog.Kind{kind}
			}

			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				for _, name := range catalog.Names(kind) {
					ordinal, _ := catalog.ParseName(kind, name)
					wire, _ := catalog.Resolve(kind, ordinal)
					fmt.Fprintf(out, "%s\t%s\t%s\n", kind, name, wire)
				}
			}
			return nil
		},
	}
}

func (a *app) authCmd() *cobra.Command {
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored credentials",
	}

	var apiKey, organization string
	set := &cobra.Command{
		Use:   "set",
		Short: "Save an API key and organization to the credential file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				return fmt.Errorf("--api-key is required")
			}
			store := config.NewCredentialStore(a.fs, a.credentialsPath)
			if err := store.Save(config.Configuration{APIKey: apiKey, Organization: organization}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved", store.Path())
			return nil
		},
	}
	set.Flags().StringVar(&apiKey, "api-key", "", "API key")
	set.Flags().StringVar(&organization, "organization", "", "organization id")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the credentials requests would use, with the key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.credentials()
			fmt.Fprintf(cmd.OutOrStdout(), "api_key\t%s\norganization\t%s\n", mask(cfg.APIKey), cfg.Organization)
			return nil
		},
	}

	auth.AddCommand(set, show)
	return auth
}

// mask keeps the first three and last four characters of a key.
func mask(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:3] + strings.Repeat("*", len(key)-7) + key[len(key)-4:]
}

// contextOf returns the command context, or Background when run without one.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
