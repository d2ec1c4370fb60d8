package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	generationservice "adforge/contexts/ad-production/generation-service"
	"adforge/contexts/ad-production/generation-service/adapters/memory"
	"adforge/contexts/ad-production/generation-service/domain/entities"
	domainerrors "adforge/contexts/ad-production/generation-service/domain/errors"
	"adforge/contexts/ad-production/generation-service/ports"
)

func awaitCompletion(t *testing.T, sink *memory.Sink) ports.CompletionResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := sink.Wait(ctx)
	require.NoError(t, err, "timed out waiting for job completion")
	return result
}

func TestImageJobCompletesThroughPrimary(t *testing.T) {
	sink := memory.NewSink()
	module, _, _ := generationservice.NewInMemoryModule(sink, nil)
	module.Manager.Start(context.Background())
	defer module.Manager.Close()

	err := module.Manager.EnqueueImage(context.Background(), entities.GenerationJob{
		AssetID: "keyframe-1",
		Prompt:  "contractor in a truck cab at night",
	})
	require.NoError(t, err)

	result := awaitCompletion(t, sink)
	assert.Equal(t, "keyframe-1", result.AssetID)
	assert.Equal(t, entities.JobKindImage, result.Kind)
	assert.True(t, result.Succeeded)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, 1, result.Attempts)
	assert.NotEmpty(t, result.ResultURL)

	submissions := sink.Submissions()
	require.Len(t, submissions, 1)
	assert.Equal(t, "primary", submissions[0].Task.Provider)
	assert.Equal(t, "keyframe-1", submissions[0].AssetID)
}

func TestVideoJobFallsBackOnPrimaryFailure(t *testing.T) {
	sink := memory.NewSink()
	module, primary, _ := generationservice.NewInMemoryModule(sink, nil)
	primary.Enqueue(memory.Outcome{Succeed: false, Reason: "content filter"})
	module.Manager.Start(context.Background())
	defer module.Manager.Close()

	err := module.Manager.EnqueueVideo(context.Background(), entities.GenerationJob{
		AssetID:           "segment-1",
		Prompt:            "slow push-in on the contractor",
		ReferenceImageURL: "https://cdn.test/start.png",
		DurationSeconds:   3,
	})
	require.NoError(t, err)

	result := awaitCompletion(t, sink)
	assert.True(t, result.Succeeded)
	assert.True(t, result.FallbackUsed)
	assert.Equal(t, 2, result.Attempts)

	submissions := sink.Submissions()
	require.Len(t, submissions, 2)
	assert.Equal(t, "primary", submissions[0].Task.Provider)
	assert.Equal(t, "fallback", submissions[1].Task.Provider)
}

func TestVideoJobFailsWhenBothProvidersFail(t *testing.T) {
	sink := memory.NewSink()
	module, primary, fallback := generationservice.NewInMemoryModule(sink, nil)
	primary.Enqueue(memory.Outcome{Succeed: false, Reason: "primary down"})
	fallback.Enqueue(memory.Outcome{Succeed: false, Reason: "fallback down"})
	module.Manager.Start(context.Background())
	defer module.Manager.Close()

	err := module.Manager.EnqueueVideo(context.Background(), entities.GenerationJob{
		AssetID: "segment-2",
		Prompt:  "rack focus to the app screen",
	})
	require.NoError(t, err)

	result := awaitCompletion(t, sink)
	assert.False(t, result.Succeeded)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.Reason)
	assert.Empty(t, result.ResultURL)
}

func TestImageJobDoesNotFallBack(t *testing.T) {
	sink := memory.NewSink()
	module, primary, _ := generationservice.NewInMemoryModule(sink, nil)
	primary.Enqueue(memory.Outcome{SubmitErr: errors.New("rate limited")})
	module.Manager.Start(context.Background())
	defer module.Manager.Close()

	err := module.Manager.EnqueueImage(context.Background(), entities.GenerationJob{
		AssetID: "keyframe-2",
		Prompt:  "wide shot of the job site",
	})
	require.NoError(t, err)

	result := awaitCompletion(t, sink)
	assert.False(t, result.Succeeded)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, 1, result.Attempts)
}

func TestJobSurvivesRunningPolls(t *testing.T) {
	sink := memory.NewSink()
	module, primary, _ := generationservice.NewInMemoryModule(sink, nil)
	primary.Enqueue(memory.Outcome{Succeed: true, RunningPolls: 3, ResultURL: "https://cdn.test/late.png"})
	module.Manager.Start(context.Background())
	defer module.Manager.Close()

	err := module.Manager.EnqueueImage(context.Background(), entities.GenerationJob{
		AssetID: "keyframe-3",
		Prompt:  "close-up on the live crew map",
	})
	require.NoError(t, err)

	result := awaitCompletion(t, sink)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "https://cdn.test/late.png", result.ResultURL)
}

func TestEnqueueRejectsInvalidJob(t *testing.T) {
	sink := memory.NewSink()
	module, _, _ := generationservice.NewInMemoryModule(sink, nil)

	err := module.Manager.EnqueueImage(context.Background(), entities.GenerationJob{AssetID: "keyframe-4"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidJob)

	err = module.Manager.EnqueueVideo(context.Background(), entities.GenerationJob{Prompt: "no asset"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidJob)
}
