package usecase

// Close implements task.UseCase. Tracked records are kept; only polling stops.
// Pending backend cancels are awaited. Observers are unsubscribed and their
// channels closed.
func (uc *implUseCase) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.closed = true
	uc.mu.Unlock()

	uc.stopAll()
	uc.pollers.Wait()
	uc.remote.Wait()

	uc.subsMu.Lock()
	for id, ch := range uc.subs {
		delete(uc.subs, id)
		close(ch)
	}
	uc.subsMu.Unlock()
}
