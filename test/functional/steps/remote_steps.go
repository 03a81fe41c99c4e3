package steps

import (
	"biometric-terminal/test/functional/driver"
)

func (fc *FeatureContext) theAttendanceServiceKnowsSlotAs(slot int, name string) error {
	fc.service.AddAttendee(slot, name, "Entrada")
	return nil
}

func (fc *FeatureContext) theAttendanceServiceAnswersWithStatus(status int) error {
	fc.service.RejectAttendance(status)
	return nil
}

func (fc *FeatureContext) theRemoteServiceIsUnreachable() error {
	fc.service.Close()
	return nil
}

func (fc *FeatureContext) anEnrollCommandForSlotIsPending(commandID string, slot int) error {
	fc.service.QueueEnroll(commandID, &slot)
	return nil
}

func (fc *FeatureContext) anEnrollCommandWithoutBiometricIDIsPending(commandID string) error {
	fc.service.QueueEnroll(commandID, nil)
	return nil
}

func (fc *FeatureContext) exactlyAttendanceReportsWereSent(count, slot int) error {
	var matching []driver.AttendancePost
	for _, post := range fc.service.AttendancePosts() {
		if post.BiometricID == slot {
			fc.require.Equal(_deviceID, post.DeviceID)
			matching = append(matching, post)
		}
	}
	fc.require.Len(matching, count)
	return nil
}

func (fc *FeatureContext) theCommandWasReportedAs(commandID, status string) error {
	fc.require.NotNil(fc.findUpdate(commandID, status), "no %q update for command %s", status, commandID)
	return nil
}

func (fc *FeatureContext) theCommandWasReportedAsWithResult(commandID, status, result string) error {
	update := fc.findUpdate(commandID, status)
	fc.require.NotNil(update, "no %q update for command %s", status, commandID)
	fc.require.Equal(result, update.Result)
	return nil
}

func (fc *FeatureContext) theRemoteServiceReceivedPolls(count int) error {
	fc.require.Equal(count, fc.service.Polls())
	return nil
}

func (fc *FeatureContext) findUpdate(commandID, status string) *driver.StatusUpdate {
	for _, update := range fc.service.StatusUpdates() {
		if update.CommandID == commandID && update.Status == status {
			return &update
		}
	}
	return nil
}

func (fc *FeatureContext) theLastPollTimeIsRecorded() error {
	snapshot := fc.board.Snapshot()
	fc.require.False(snapshot.LastPoll.IsZero(), "no poll recorded")
	fc.require.False(snapshot.LastPoll.After(fc.clock.Now()))
	return nil
}
